package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Primesh-FL/FormSG/internal/http/middleware"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/service"
)

type stubValidator struct {
	fn func(ctx context.Context, token string) (*model.User, error)
}

func (s stubValidator) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	return s.fn(ctx, token)
}

var _ = Describe("RequireAuth", func() {
	var (
		router    *gin.Engine
		validator stubValidator
		secure    bool
		seenUser  *model.User
	)

	BeforeEach(func() {
		seenUser = nil
		secure = false
		validator = stubValidator{fn: func(_ context.Context, token string) (*model.User, error) {
			Expect(token).To(Equal("tok-abc"))
			return &model.User{ID: 7, Email: "admin@example.com"}, nil
		}}
	})

	JustBeforeEach(func() {
		router = gin.New()
		router.GET("/private", middleware.RequireAuth(validator, secure), func(c *gin.Context) {
			seenUser = middleware.GetUser(c.Request.Context())
			c.Status(http.StatusNoContent)
		})
	})

	do := func(cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: cookie})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("rejects requests without a session cookie", func() {
		w := do("")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(MatchJSON(`{"message":"User is not authorized"}`))
	})

	It("passes the raw cookie token to the validator", func() {
		w := do("tok-abc")
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(seenUser).NotTo(BeNil())
		Expect(seenUser.ID).To(Equal(int64(7)))
	})

	Context("when the session has expired", func() {
		BeforeEach(func() {
			validator.fn = func(context.Context, string) (*model.User, error) {
				return nil, service.ErrSessionExpired
			}
		})

		It("clears the cookie and returns 401", func() {
			w := do("tok-abc")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "=;"))
			Expect(w.Header().Get("Set-Cookie")).NotTo(ContainSubstring("Secure"))
		})

		Context("in production", func() {
			BeforeEach(func() {
				secure = true
			})

			It("clears the cookie with the Secure attribute", func() {
				w := do("tok-abc")
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("Secure"))
				Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("HttpOnly"))
			})
		})
	})

	Context("when validation fails unexpectedly", func() {
		BeforeEach(func() {
			validator.fn = func(context.Context, string) (*model.User, error) {
				return nil, errors.New("db down")
			}
		})

		It("returns 500", func() {
			Expect(do("tok-abc").Code).To(Equal(http.StatusInternalServerError))
		})
	})
})

var _ = Describe("Recovery and Logger", func() {
	var (
		logBuf  *bytes.Buffer
		prevLog *slog.Logger
		router  *gin.Engine
	)

	BeforeEach(func() {
		logBuf = &bytes.Buffer{}
		prevLog = slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(logBuf, nil)))

		router = gin.New()
		router.Use(middleware.Logger(), middleware.Recovery())
		router.GET("/boom", func(*gin.Context) { panic("kaboom") })
		router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	})

	AfterEach(func() {
		slog.SetDefault(prevLog)
	})

	It("turns panics into a 500 with a message body", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"message":"Internal server error"}`))
		Expect(logBuf.String()).To(ContainSubstring("panic recovered"))
	})

	It("logs client errors at warn", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

		var entry map[string]any
		line := bytes.TrimSpace(logBuf.Bytes())
		Expect(json.Unmarshal(line, &entry)).To(Succeed())
		Expect(entry["level"]).To(Equal("WARN"))
		Expect(entry["path"]).To(Equal("/missing?x=1"))
		Expect(entry["status"]).To(BeNumerically("==", 404))
	})
})
