package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/classpulse/classpulse/internal/errors"
	"github.com/classpulse/classpulse/internal/server"
)

// serveCommand runs the mock backend until interrupted.
func serveCommand(addrFlag string, seed int64) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := cfg.Serve.Addr
	if addrFlag != "" {
		addr = addrFlag
	}

	var srv *server.Server
	if seed != 0 {
		srv = server.NewWithSeed(addr, seed)
	} else {
		srv = server.New(addr)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Printf("mock backend on %s (Ctrl+C to stop)\n", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.WrapWithCode(err, errors.ErrExec,
				"Mock backend failed to serve on "+addr,
				"Is the port already in use? Try --addr with a different port")
		}
		return nil
	case <-sigCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
