package utils

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	serverReadTimeout  = 60 * time.Second
	serverWriteTimeout = 60 * time.Second
	shutdownTimeout    = 30 * time.Second

	// A child started on SIGUSR2 inherits the listener on fd 3 and
	// detects the handoff through this environment variable.
	inheritEnvKey = "LISTENER_INHERITED"
	inheritFd     = 3
)

// graceServer serves HTTP and supports zero-downtime restart: SIGTERM
// drains in-flight requests, SIGUSR2 forks a replacement process that
// takes over the listening socket before the old one shuts down.
type graceServer struct {
	http *http.Server

	listener  net.Listener
	inherited bool
	signals   chan os.Signal
	drained   chan struct{}
}

func newGraceServer(addr string, handler http.Handler) *graceServer {
	return &graceServer{
		http: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  serverReadTimeout,
			WriteTimeout: serverWriteTimeout,
		},
		inherited: os.Getenv(inheritEnvKey) != "",
		signals:   make(chan os.Signal, 1),
		drained:   make(chan struct{}),
	}
}

func (s *graceServer) listen() error {
	if s.inherited {
		ln, err := net.FileListener(os.NewFile(inheritFd, ""))
		if err != nil {
			return fmt.Errorf("inherit listener: %w", err)
		}
		s.listener = ln
		return nil
	}
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	s.listener = ln
	return nil
}

func (s *graceServer) run() error {
	go s.watchSignals()
	err := s.http.Serve(s.listener)
	// Serve returns as soon as the listener closes; hold the process
	// until Shutdown has drained in-flight requests.
	<-s.drained
	return err
}

func (s *graceServer) watchSignals() {
	signal.Notify(s.signals, syscall.SIGTERM, syscall.SIGUSR2)

	for sig := range s.signals {
		switch sig {
		case syscall.SIGTERM:
			Sugar.Info("SIGTERM received, draining HTTP server")
			s.drain()
		case syscall.SIGUSR2:
			Sugar.Info("SIGUSR2 received, handing listener to a new process")
			pid, err := s.forkSuccessor()
			if err != nil {
				Sugar.Errorf("restart failed, keeping current process: %v", err)
				continue
			}
			Sugar.Infof("successor running, pid=%d; draining old server", pid)
			s.drain()
		}
	}
}

func (s *graceServer) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		Sugar.Errorf("HTTP server shutdown: %v", err)
	} else {
		Sugar.Info("HTTP server drained")
	}
	close(s.drained)
}

// forkSuccessor re-execs the current binary with the listening socket
// passed as fd 3 so no connection is refused during the swap.
func (s *graceServer) forkSuccessor() (int, error) {
	tcpLn, ok := s.listener.(*net.TCPListener)
	if !ok {
		return 0, fmt.Errorf("listener %T cannot be handed off", s.listener)
	}
	file, err := tcpLn.File()
	if err != nil {
		return 0, fmt.Errorf("dup listener fd: %w", err)
	}

	env := []string{inheritEnvKey + "=1"}
	for _, e := range os.Environ() {
		if e != inheritEnvKey+"=1" {
			env = append(env, e)
		}
	}

	pid, err := syscall.ForkExec(os.Args[0], os.Args, &syscall.ProcAttr{
		Env:   env,
		Files: []uintptr{os.Stdin.Fd(), os.Stdout.Fd(), os.Stderr.Fd(), file.Fd()},
	})
	if err != nil {
		return 0, fmt.Errorf("forkexec: %w", err)
	}
	return pid, nil
}

// GraceServer runs handler on addr until the process is told to stop
// or restart.
func GraceServer(addr string, handler http.Handler) error {
	srv := newGraceServer(addr, handler)
	if err := srv.listen(); err != nil {
		return err
	}
	return srv.run()
}
