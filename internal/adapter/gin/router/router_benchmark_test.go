package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-container-demo/internal/adapter/db/gormstore"
	"user-container-demo/internal/adapter/gin/handler"
	"user-container-demo/internal/usecase/user"
)

func setupBenchmarkRouter(b *testing.B) *gin.Engine {
	b.Helper()
	gin.SetMode(gin.ReleaseMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		b.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		b.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	b.Cleanup(func() { _ = sqlDB.Close() })

	log := zap.NewNop()
	if err := gormstore.Initialize(b.Context(), db, log); err != nil {
		b.Fatal(err)
	}

	uc := user.New(gormstore.NewUserRepo(db, log), log)
	return SetupRouter(handler.NewUserHandler(uc, log), nil, log)
}

func BenchmarkGin_AddUser(b *testing.B) {
	router := setupBenchmarkRouter(b)
	var counter int64

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(p *testing.PB) {
		for p.Next() {
			id := atomic.AddInt64(&counter, 1)
			body := fmt.Sprintf(`{"first_name":"User","last_name":"N%d","email":"user_%d@example.com","age":"30"}`, id, id)
			req := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusCreated {
				b.Errorf("expected status 201, got %d", w.Code)
			}
		}
	})
}

func BenchmarkGin_RenderUsers(b *testing.B) {
	router := setupBenchmarkRouter(b)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(p *testing.PB) {
		for p.Next() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/render?kind=dictionary", nil))
			if w.Code != http.StatusOK {
				b.Errorf("expected status 200, got %d", w.Code)
			}
		}
	})
}
