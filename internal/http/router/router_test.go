package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/Primesh-FL/FormSG/core/config"
	"github.com/Primesh-FL/FormSG/internal/http/router"
	"github.com/Primesh-FL/FormSG/internal/service"
	"github.com/Primesh-FL/FormSG/internal/store"
)

var _ = Describe("SetupRoutes", func() {
	var engine *gin.Engine

	BeforeEach(func() {
		sms, err := service.NewSmsDeliveryService(nil, noop.NewMeterProvider().Meter("test"))
		Expect(err).NotTo(HaveOccurred())

		services := service.NewServices(store.NewStores(nil), nil, config.WorkOSConfig{
			APIKey:   "sk_test",
			ClientID: "client_test",
		}, sms)

		engine = gin.New()
		router.SetupRoutes(engine, services, router.RouterConfig{
			DashboardURL: "http://localhost:3000",
			PublicURL:    "http://localhost:8080",
		})
	})

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	It("serves the health check", func() {
		w := serve(httptest.NewRequest(http.MethodGet, "/health", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	DescribeTable("guards admin routes with a session",
		func(method, path string) {
			w := serve(httptest.NewRequest(method, path, nil))

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(MatchJSON(`{"message":"User is not authorized"}`))
		},
		Entry("list workspaces", http.MethodGet, "/api/v1/admin/workspaces"),
		Entry("create workspace", http.MethodPost, "/api/v1/admin/workspaces"),
		Entry("rename workspace", http.MethodPut, "/api/v1/admin/workspaces/1/title"),
		Entry("delete workspace", http.MethodDelete, "/api/v1/admin/workspaces/1"),
		Entry("move forms", http.MethodPost, "/api/v1/admin/workspaces/1/move"),
		Entry("list forms", http.MethodGet, "/api/v1/admin/forms"),
		Entry("form schema", http.MethodGet, "/api/v1/admin/forms/schema"),
		Entry("update form", http.MethodPut, "/api/v1/admin/forms/1"),
		Entry("current user", http.MethodGet, "/auth/me"),
	)

	It("leaves the Twilio callback open but requires its signature header", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/twilio", strings.NewReader("SmsSid=SM1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := serve(req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"message":"x-twilio-signature header is required"}`))
	})
})
