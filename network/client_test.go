package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/ratelimit"
)

func TestClient(t *testing.T) {
	Convey("Given a client built with defaults", t, func() {
		var ua, accept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
			accept = r.Header.Get("Accept")
			_, _ = w.Write([]byte(`{}`))
		}))
		Reset(srv.Close)

		client := New(Options{Timeout: time.Second})

		Convey("Requests carry the application headers", func() {
			resp, err := client.R().Get(srv.URL)
			So(err, ShouldBeNil)
			So(resp.IsError(), ShouldBeFalse)
			So(ua, ShouldStartWith, "anidex/")
			So(accept, ShouldEqual, "application/json")
		})
	})

	Convey("An unlimited limiter never waits", t, func() {
		l := NewLimiter(0)
		start := time.Now()
		for i := 0; i < 100; i++ {
			l.Take()
		}
		So(time.Since(start), ShouldBeLessThan, 100*time.Millisecond)
	})
}

func TestGate(t *testing.T) {
	Convey("Given a gate over a limiter admitting one request per 200ms", t, func() {
		gate := NewGate(ratelimit.New(5, ratelimit.WithoutSlack))

		Convey("A cancelled context is refused without taking a permit", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			So(gate.Wait(ctx), ShouldEqual, context.Canceled)

			start := time.Now()
			So(gate.Wait(context.Background()), ShouldBeNil)
			So(time.Since(start), ShouldBeLessThan, 100*time.Millisecond)
		})

		Convey("A caller that gives up does not cost the next one a permit", func() {
			So(gate.Wait(context.Background()), ShouldBeNil)
			start := time.Now()

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			So(gate.Wait(ctx), ShouldEqual, context.DeadlineExceeded)

			So(gate.Wait(context.Background()), ShouldBeNil)
			So(time.Since(start), ShouldBeLessThan, 350*time.Millisecond)
		})
	})
}
