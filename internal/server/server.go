// Package server wires staging, the static file handler, the live-reload
// watcher, and the browser launcher into one local HTTP server.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/rajatgupta431/artbd/internal/assets"
	"github.com/rajatgupta431/artbd/internal/locate"
	"github.com/rajatgupta431/artbd/internal/stage"
)

const (
	host = "127.0.0.1"
	port = 8080

	shutdownTimeout = 5 * time.Second
)

// Run stages the art board files and serves them until ctx is cancelled.
func Run(ctx context.Context) error {
	root, err := stageRoot()
	if err != nil {
		fmt.Printf("\n❌ Failed to prepare files: %v\n", err)
		waitForAck()
		return err
	}
	defer root.Release()

	mux := http.NewServeMux()
	mux.Handle("/", fileHandler(root.Path))

	if !assets.Packaged() {
		if rl, err := newReloader(root.Path); err != nil {
			slog.Warn("Live reload disabled", "error", err)
		} else {
			defer rl.stop()
			mux.Handle("/events", rl)
		}
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		reportBindError(err)
		waitForAck()
		return err
	}

	url := "http://" + addr
	printBanner(url)

	httpServer := &http.Server{Handler: mux}

	go func() {
		<-ctx.Done()
		fmt.Println("\n🛑 Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}()

	// The listener is bound, so the server is ready for the browser's first
	// request as soon as Serve picks up connections from the accept queue.
	go openBrowser(ctx, url)

	if err := httpServer.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Server error: %v", err)
		return err
	}
	fmt.Println("✅ Server stopped.")
	return nil
}

// stageRoot picks the serve root: extracted embedded files when packaged,
// the first conventional directory beside the executable otherwise.
func stageRoot() (*stage.Root, error) {
	if assets.Packaged() {
		return stage.Extract(locate.Bundled(assets.FS()), afero.NewOsFs())
	}
	dir := locate.Beside(afero.NewOsFs(), locate.ExecutableDir())
	return stage.Passthrough(dir), nil
}

func printBanner(url string) {
	fmt.Println("==================================================")
	fmt.Println("  🎨 Digital Art Board")
	fmt.Println("==================================================")
	fmt.Printf("\n🌍 Server running at: %s\n", url)
	if !assets.Packaged() {
		fmt.Println("   (Auto-reload enabled via /events)")
	}
	fmt.Println("\n   Press Ctrl+C to stop the server")
}

func reportBindError(err error) {
	if isAddrInUse(err) {
		fmt.Printf("\n❌ Port %d is already in use.\n", port)
		fmt.Println("   Try closing other applications using this port.")
		return
	}
	fmt.Printf("\n❌ Failed to start server: %v\n", err)
}

// waitForAck keeps the console window alive in packaged builds so a
// double-clicking user can read the error before the window closes.
func waitForAck() {
	if !assets.Packaged() {
		return
	}
	fmt.Print("\nPress Enter to exit...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
