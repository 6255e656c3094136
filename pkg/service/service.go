// Package service renders journals in the background and serves them
// over HTTP.
//
// Jobs are kept in memory. Rendered files go to a journal.Cache, so a
// restart loses the job list but not the files.
package service

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
	"github.com/akeil/tripjournal/pkg/compose"
	"github.com/akeil/tripjournal/pkg/content"
	"github.com/akeil/tripjournal/pkg/impose"
)

// Status is the state of a render job.
type Status string

const (
	Processing Status = "processing"
	Completed  Status = "completed"
	Failed     Status = "failed"
)

// Job is a snapshot of one render job.
type Job struct {
	ID          string    `json:"journalId"`
	Status      Status    `json:"status"`
	Progress    int       `json:"progress"`
	Error       string    `json:"error,omitempty"`
	ChildName   string    `json:"childName"`
	Destination string    `json:"destination"`
	TripDays    int       `json:"tripDays"`
	PageCount   int       `json:"pageCount"`
	FileSize    int64     `json:"fileSize"`
	Created     time.Time `json:"createdAt"`

	content *journal.Content
}

// Ready tells whether the rendered journal can be downloaded.
func (j Job) Ready() bool {
	return j.Status == Completed
}

// Service manages render jobs.
type Service struct {
	gen   content.Generator
	cache journal.Cache
	ctx   *compose.Context
	sem   *semaphore.Weighted
	hub   *Hub

	mx   sync.RWMutex
	jobs map[string]*Job
	wg   sync.WaitGroup
	base context.Context
	stop context.CancelFunc
}

// New creates a service that renders at most workers journals at a time.
func New(gen content.Generator, cache journal.Cache, ctx *compose.Context, workers int64) *Service {
	if workers < 1 {
		workers = 1
	}
	base, stop := context.WithCancel(context.Background())
	return &Service{
		gen:   gen,
		cache: cache,
		ctx:   ctx,
		sem:   semaphore.NewWeighted(workers),
		hub:   NewHub(),
		jobs:  make(map[string]*Job),
		base:  base,
		stop:  stop,
	}
}

// Hub is the status feed of this service.
func (s *Service) Hub() *Hub {
	return s.hub
}

// Create validates the trip and starts rendering it in the background.
func (s *Service) Create(t content.Trip) (Job, error) {
	err := t.Validate()
	if err != nil {
		return Job{}, err
	}

	job := &Job{
		ID:          uuid.New().String(),
		Status:      Processing,
		ChildName:   t.ChildName,
		Destination: t.Destination,
		TripDays:    journal.TripDays(t.StartDate, t.EndDate),
		Created:     time.Now(),
	}
	s.mx.Lock()
	s.jobs[job.ID] = job
	snap := *job
	s.mx.Unlock()

	logging.Info("Created job %v for %q", job.ID, t.Destination)
	s.hub.Publish(snap)

	s.wg.Add(1)
	go s.run(job.ID, t)
	return snap, nil
}

// Job returns the current state of a job.
func (s *Service) Job(id string) (Job, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	j, ok := s.jobs[id]
	if !ok {
		return Job{}, journal.NewNotFound("no job with id %q", id)
	}
	return *j, nil
}

// Content returns the journal content of a completed job.
func (s *Service) Content(id string) (*journal.Content, error) {
	j, err := s.Job(id)
	if err != nil {
		return nil, err
	}
	if j.content == nil {
		return nil, journal.NewNotFound("job %v has no content yet", id)
	}
	return j.content, nil
}

// Wait blocks until all running jobs are done.
func (s *Service) Wait() {
	s.wg.Wait()
}

// Close cancels running jobs, waits for them and closes the status feed.
func (s *Service) Close() {
	s.stop()
	s.wg.Wait()
	s.hub.Close()
}

func (s *Service) run(id string, t content.Trip) {
	defer s.wg.Done()

	err := s.sem.Acquire(s.base, 1)
	if err != nil {
		s.fail(id, err)
		return
	}
	defer s.sem.Release(1)

	err = s.render(id, t)
	if err != nil {
		s.fail(id, err)
	}
}

func (s *Service) render(id string, t content.Trip) error {
	c, plan, err := content.Build(s.gen, t)
	if err != nil {
		return err
	}
	s.update(id, func(j *Job) {
		j.Progress = 10
		j.Destination = c.Destination
		j.TripDays = c.TripDays
		j.content = c
	})

	total := plan.Pages()
	comp := compose.NewComposer(s.ctx)
	comp.Observe(func(e compose.Event) {
		if e.Kind != compose.PageStarted {
			return
		}
		p := 10 + 80*e.Page/total
		if p > 90 {
			p = 90
		}
		s.update(id, func(j *Job) {
			j.Progress = p
		})
	})

	var buf bytes.Buffer
	err = comp.RenderTo(s.base, c, &buf)
	if err != nil {
		return journal.Wrap(err, "render journal")
	}
	size := int64(buf.Len())

	pages, err := impose.PageCount(bytes.NewReader(buf.Bytes()))
	if err != nil {
		logging.Warning("Could not count pages of %v: %v", id, err)
		pages = total
	}

	err = s.cache.Put(id+".pdf", &buf)
	if err != nil {
		return journal.Wrap(err, "store journal")
	}

	logging.Info("Job %v done, %d pages", id, pages)
	s.update(id, func(j *Job) {
		j.Status = Completed
		j.Progress = 100
		j.PageCount = pages
		j.FileSize = size
	})
	return nil
}

func (s *Service) fail(id string, err error) {
	logging.Error("Job %v failed: %v", id, err)
	s.update(id, func(j *Job) {
		j.Status = Failed
		j.Error = err.Error()
	})
}

// update changes a job under the lock and publishes the new state.
func (s *Service) update(id string, f func(j *Job)) {
	s.mx.Lock()
	j, ok := s.jobs[id]
	if !ok {
		s.mx.Unlock()
		return
	}
	before := *j
	f(j)
	snap := *j
	s.mx.Unlock()

	if snap.Status != before.Status || snap.Progress != before.Progress {
		s.hub.Publish(snap)
	}
}
