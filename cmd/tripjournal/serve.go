package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
	"github.com/akeil/tripjournal/pkg/service"
)

func doServe(s settings) error {
	gen, err := setupGenerator(s)
	if err != nil {
		return err
	}
	rc, err := setupContext(s)
	if err != nil {
		return err
	}

	err = os.MkdirAll(s.CacheDir, 0755)
	if err != nil {
		return journal.Wrap(err, "create cache dir")
	}
	svc := service.New(gen, journal.NewFilesystemCache(s.CacheDir), rc, s.Workers)
	defer svc.Close()

	srv := &http.Server{
		Addr:    s.Listen,
		Handler: svc.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		logging.Info("Shutting down")
		timeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(timeout)
	}()

	fmt.Printf("%v listening on %v\n", checkmark, s.Listen)
	err = srv.ListenAndServe()
	if err != http.ErrServerClosed {
		return err
	}
	return nil
}
