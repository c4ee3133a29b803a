// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/tipviz/tipcharts/chart"
	"github.com/tipviz/tipcharts/surface"
)

var cmdServeFlags = newFlagSet("serve", "<tips.csv>")

var serve struct {
	addr string
	ttl  time.Duration
}

func init() {
	f := cmdServeFlags
	addCommonFlags(f, true)
	f.StringVarP(&serve.addr, "addr", "a", "localhost:8080", "listen on `address`")
	f.DurationVar(&serve.ttl, "cache-ttl", 5*time.Minute, "keep rendered charts for `duration`")
	registerSubcommand("serve", "serve charts over HTTP", cmdServe, f)
}

func cmdServe(args []string) error {
	ds, err := loadDataset(oneArg(cmdServeFlags, args))
	if err != nil {
		return err
	}
	d := chart.NewDashboard(dashboardOptions())
	defer d.Close()
	if err := d.Load(ds); err != nil {
		return err
	}
	if err := d.SetBinding(binding()); err != nil {
		return err
	}

	s := newServer(d, serve.ttl, slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	log.Printf("serving on http://%s/", serve.addr)
	return s.echo.Start(serve.addr)
}

// server renders dashboard charts over HTTP.
type server struct {
	dash   *chart.Dashboard
	cache  *cache.Cache
	echo   *echo.Echo
	logger *slog.Logger

	// mu makes applying a request's binding and size and encoding
	// the result one step.
	mu sync.Mutex
}

func newServer(d *chart.Dashboard, ttl time.Duration, logger *slog.Logger) *server {
	s := &server{
		dash:   d,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("latency_ms", v.Latency.Milliseconds()),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("err", v.Error.Error()))
			}
			s.logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	}))

	e.GET("/", s.getIndex)
	e.GET("/binding", s.getBinding)
	e.GET("/charts/:file", s.getChart)
	s.echo = e
	return s
}

func (s *server) handleError(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Message != nil {
			msg = fmt.Sprintf("%v", he.Message)
		}
	}
	if c.Response().Committed {
		return
	}
	if err := c.String(code, msg); err != nil {
		s.logger.Error("writing error response", "err", err)
	}
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Tips</title></head>
<body>
<form method="get">
  <label>X <select name="x">{{range .Attrs}}<option{{if eq . $.Binding.X}} selected{{end}}>{{.}}</option>{{end}}</select></label>
  <label>Y <select name="y">{{range .Attrs}}<option{{if eq . $.Binding.Y}} selected{{end}}>{{.}}</option>{{end}}</select></label>
  <input type="submit" value="Draw">
</form>
{{range .Charts}}<h2>{{.}}</h2>
<img src="/charts/{{.}}.svg?x={{$.Binding.X}}&amp;y={{$.Binding.Y}}">
{{end}}
</body>
</html>
`))

func (s *server) getIndex(c echo.Context) error {
	b, err := s.queryBinding(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	err = indexTmpl.Execute(&buf, struct {
		Attrs   []string
		Binding chart.Binding
		Charts  []string
	}{s.dash.Schema().Numeric, b, chart.Names})
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

type bindingJSON struct {
	X string `json:"x"`
	Y string `json:"y"`
}

func (s *server) getBinding(c echo.Context) error {
	b := s.dash.Binding()
	return c.JSON(http.StatusOK, bindingJSON{b.X, b.Y})
}

// queryBinding returns the binding named by the x and y query
// parameters, defaulting each to the current binding.
func (s *server) queryBinding(c echo.Context) (chart.Binding, error) {
	b := s.dash.Binding()
	if x := c.QueryParam("x"); x != "" {
		b.X = x
	}
	if y := c.QueryParam("y"); y != "" {
		b.Y = y
	}
	if err := b.Validate(s.dash.Schema()); err != nil {
		return b, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return b, nil
}

func queryFloat(c echo.Context, name string) (float64, bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !(f > 0) {
		return 0, false, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("bad %s %q", name, v))
	}
	return f, true, nil
}

func (s *server) getChart(c echo.Context) error {
	name, format, ok := strings.Cut(c.Param("file"), ".")
	if !ok {
		return echo.ErrNotFound
	}
	enc, err := encoderFor(format)
	if err != nil {
		return echo.ErrNotFound
	}
	b, err := s.queryBinding(c)
	if err != nil {
		return err
	}
	qw, hasW, err := queryFloat(c, "w")
	if err != nil {
		return err
	}
	qh, hasH, err := queryFloat(c, "h")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, h, err := s.dash.Size(name)
	if errors.Is(err, chart.ErrUnknownChart) {
		return echo.ErrNotFound
	} else if err != nil {
		return err
	}
	if hasW {
		w = qw
	}
	if hasH {
		h = qh
	}

	// The request's binding and size become the dashboard's state
	// even when the encoded chart comes from the cache.
	if b != s.dash.Binding() {
		if err := s.dash.SetBinding(b); errors.Is(err, chart.ErrUnknownAttribute) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		} else if err != nil {
			return err
		}
	}
	if hasW || hasH {
		if err := s.dash.Resize(name, w, h); err != nil {
			return err
		}
	}

	key := fmt.Sprintf("%s.%s?%s&%gx%g", name, format, b, w, h)
	if data, ok := s.cache.Get(key); ok {
		return c.Blob(http.StatusOK, enc.contentType, data.([]byte))
	}

	var buf bytes.Buffer
	err = s.dash.View(name, func(sc *surface.Scene) error {
		if sc.Len() == 0 {
			return echo.NewHTTPError(http.StatusNotFound, "nothing to draw")
		}
		return enc.write(&buf, sc)
	})
	if err != nil {
		return err
	}
	s.cache.Set(key, buf.Bytes(), cache.DefaultExpiration)
	return c.Blob(http.StatusOK, enc.contentType, buf.Bytes())
}
