package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/coder/websocket"

	"github.com/fractalkit/mandel"
)

// renderRequest is the JSON message a client sends to start a render.
// Zero values fall back to sensible defaults; Landmark, when set,
// overrides the center and zoom.
type renderRequest struct {
	Real       float64 `json:"real"`
	Imag       float64 `json:"imag"`
	Zoom       float64 `json:"zoom"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Iterations int     `json:"iterations"`
	Samples    int     `json:"samples"`
	Palette    string  `json:"palette"` // "classic", "gray" or "hsv"
	Landmark   string  `json:"landmark"`
}

// renderHeader is the JSON frame sent before any pixel data.
type renderHeader struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// maxPixels caps requested image sizes so a single client cannot pin the
// server on an absurd allocation.
const maxPixels = 3840 * 2160

// serveRender runs one request/stream exchange on an accepted socket.
//
// Wire protocol: one JSON text frame with the image dimensions, then one
// binary frame per completed row band, laid out as
//
//	uint32 y0 | uint32 y1 | (y1-y0) rows of width*4 RGBA bytes
//
// in big-endian byte order, half-open range. Bands arrive in completion order, not
// image order.
func serveRender(ctx context.Context, c *websocket.Conn) error {
	var req renderRequest
	typ, data, err := c.Read(ctx)
	if err != nil {
		return err
	}
	if typ != websocket.MessageText {
		return fmt.Errorf("expected a text request frame")
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("bad request: %w", err)
	}

	cfg, err := configFromRequest(req)
	if err != nil {
		return err
	}

	header, err := json.Marshal(renderHeader{Width: cfg.View.Width, Height: cfg.View.Height})
	if err != nil {
		return err
	}
	if err := c.Write(ctx, websocket.MessageText, header); err != nil {
		return err
	}

	pm := mandel.NewPixmap(cfg.View.Width, cfg.View.Height)

	// Band hooks fire concurrently from render workers; frames must go
	// out from a single goroutine, so hooks only enqueue row ranges.
	bandCh := make(chan [2]int, 64)
	renderErr := make(chan error, 1)
	go func() {
		defer close(bandCh)
		_, err := mandel.Render(cfg,
			mandel.WithPixmap(pm),
			mandel.WithContext(ctx),
			mandel.WithBandDone(func(y0, y1 int) {
				select {
				case bandCh <- [2]int{y0, y1}:
				case <-ctx.Done():
				}
			}))
		renderErr <- err
	}()

	rowBytes := cfg.View.Width * 4
	for band := range bandCh {
		y0, y1 := band[0], band[1]
		frame := make([]byte, 8+(y1-y0)*rowBytes)
		binary.BigEndian.PutUint32(frame[0:4], uint32(y0))
		binary.BigEndian.PutUint32(frame[4:8], uint32(y1))
		for y := y0; y < y1; y++ {
			copy(frame[8+(y-y0)*rowBytes:], pm.Row(y))
		}
		if err := c.Write(ctx, websocket.MessageBinary, frame); err != nil {
			return err
		}
	}

	return <-renderErr
}

// configFromRequest validates and defaults a client request. The render
// core re-validates; this layer only shapes raw input.
func configFromRequest(req renderRequest) (mandel.Config, error) {
	if req.Width <= 0 {
		req.Width = 960
	}
	if req.Height <= 0 {
		req.Height = 640
	}
	if req.Width*req.Height > maxPixels {
		return mandel.Config{}, fmt.Errorf("requested %dx%d exceeds the size limit", req.Width, req.Height)
	}
	if req.Iterations <= 0 {
		req.Iterations = 500
	}
	if req.Samples <= 0 {
		req.Samples = 2
	}
	if req.Zoom == 0 {
		req.Zoom = 1
	}
	if req.Real == 0 && req.Imag == 0 && req.Landmark == "" {
		req.Landmark = "home"
	}
	if req.Landmark != "" {
		l, ok := mandel.LandmarkByName(req.Landmark)
		if !ok {
			return mandel.Config{}, fmt.Errorf("unknown landmark %q", req.Landmark)
		}
		req.Real, req.Imag = l.CenterReal, l.CenterImag
		req.Zoom *= l.Zoom
	}

	cfg := mandel.Config{
		View: mandel.View{
			CenterReal: req.Real,
			CenterImag: req.Imag,
			Zoom:       req.Zoom,
			Width:      req.Width,
			Height:     req.Height,
		},
		MaxIterations: req.Iterations,
		Samples:       req.Samples,
	}
	switch req.Palette {
	case "", "classic":
	case "gray", "grayscale":
		cfg.Palette = mandel.Grayscale
	case "hsv":
		cfg.Palette = mandel.HSV
	default:
		return mandel.Config{}, fmt.Errorf("unknown palette %q", req.Palette)
	}
	return cfg, nil
}
