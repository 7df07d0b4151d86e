package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type pingController struct{}

func (pingController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("GET /api/ping", func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, map[string]string{"status": "pong"})
	})
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("NewServer", func() {
		ginkgo.It("should serve controller routes, health and metrics", func() {
			server := NewServer(":0", pingController{})
			gomega.Expect(server.Addr()).To(gomega.Equal(":0"))

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("pong"))

			rec = httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			rec = httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should reject methods that are not routed", func() {
			server := NewServer(":0", pingController{})

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ping", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusMethodNotAllowed))
		})
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.It("should add a span to the request context", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				span := GetSpanFromContext(r)
				gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())
				w.WriteHeader(http.StatusCreated)
			})

			rec := httptest.NewRecorder()
			createTracingMiddleware()(testHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
			gomega.Expect(rec.Header().Get("traceparent")).NotTo(gomega.BeEmpty())
		})

		ginkgo.It("should continue an incoming trace", func() {
			const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				span := GetSpanFromContext(r)
				gomega.Expect(span.SpanContext().TraceID().String()).To(gomega.Equal(traceID))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
			createTracingMiddleware()(testHandler).ServeHTTP(httptest.NewRecorder(), req)
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.It("should return a no-op span when no span is in context", func() {
			span := GetSpanFromContext(httptest.NewRequest(http.MethodGet, "/test", nil))
			gomega.Expect(span).NotTo(gomega.BeNil())
			gomega.Expect(span.IsRecording()).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("Helpers", func() {
		ginkgo.It("should reply with a JSON error body", func() {
			rec := httptest.NewRecorder()
			ReplyWithError(rec, http.StatusConflict, "Sensor name already exists", "")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusConflict))
			gomega.Expect(rec.Header().Get("Content-Type")).To(gomega.Equal("application/json"))

			var body ErrorResponse
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body.Error).To(gomega.Equal("Sensor name already exists"))
			gomega.Expect(rec.Body.String()).NotTo(gomega.ContainSubstring("message"))
		})

		ginkgo.It("should decode JSON bodies", func() {
			var body struct {
				Value float64 `json:"value"`
			}
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value": 21.5}`))

			gomega.Expect(DecodeJSONBody(req, &body)).To(gomega.Succeed())
			gomega.Expect(body.Value).To(gomega.Equal(21.5))
		})

		ginkgo.It("should fail on malformed JSON", func() {
			var body map[string]any
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":`))

			gomega.Expect(DecodeJSONBody(req, &body)).To(gomega.HaveOccurred())
		})

		ginkgo.It("should surface read errors", func() {
			var body map[string]any
			req := httptest.NewRequest(http.MethodPost, "/", failingReader{})

			gomega.Expect(DecodeJSONBody(req, &body)).To(gomega.MatchError(gomega.ContainSubstring("reading request body")))
		})
	})
})

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}
