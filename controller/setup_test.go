package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openai/openai-go"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"isaacdex/middleware"
	"isaacdex/model"
	"isaacdex/service"
)

const testAPIKey = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// newTestRouter wires the real middleware chain and routes the way main does.
func newTestRouter(t *testing.T, db *gorm.DB, llm *openai.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.APIKeyAuth(testAPIKey)

	items := NewItemController(service.NewItemService(db))
	itemRoutes := r.Group("/items", auth)
	{
		itemRoutes.GET("/", items.List)
		itemRoutes.GET("/:id", items.Detail)
		itemRoutes.PATCH("/:id", items.Patch)
		itemRoutes.DELETE("/:id", items.Delete)
	}

	monsters := NewMonsterController(service.NewMonsterService(db))
	monsterRoutes := r.Group("/monsters", auth)
	{
		monsterRoutes.GET("/", monsters.List)
		monsterRoutes.GET("/:id", monsters.Detail)
		monsterRoutes.POST("/", monsters.Create)
		monsterRoutes.PATCH("/:id", monsters.Patch)
		monsterRoutes.DELETE("/:id", monsters.Delete)
	}

	if llm != nil {
		chat := NewChatController(service.NewChatService(llm))
		r.POST("/chat", auth, chat.Chat)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
