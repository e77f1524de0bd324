// Command mandelserve serves Mandelbrot renders over HTTP. A browser
// opens the embedded page, sends a render request on the /ws websocket
// endpoint and receives the image progressively, one finished row band
// per binary frame.
package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/coder/websocket"

	"github.com/fractalkit/mandel"
)

//go:embed static
var static embed.FS

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pages, err := fs.Sub(static, "static")
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", renderSocket)
	mux.Handle("/", http.FileServer(http.FS(pages)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	log.Fatal(srv.ListenAndServe())
}

// renderSocket handles one websocket render session: it reads a single
// request, streams row bands while the render runs, and closes.
func renderSocket(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	if err := serveRender(ctx, c); err != nil && ctx.Err() == nil {
		log.Printf("render session: %v", err)
		return
	}
	c.Close(websocket.StatusNormalClosure, "")
}
