package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServices struct {
	content     *mocks.MockContentServiceInterface
	board       *mocks.MockBoardServiceInterface
	task        *mocks.MockTaskServiceInterface
	prompt      *mocks.MockPromptServiceInterface
	preferences *mocks.MockPreferencesServiceInterface
	backup      *mocks.MockBackupServiceInterface
	migration   *mocks.MockMigrationServiceInterface
}

// newTestRouter wires the full router to fresh service mocks.
func newTestRouter(t *testing.T) (*gin.Engine, testServices) {
	t.Helper()
	s := testServices{
		content:     mocks.NewMockContentServiceInterface(t),
		board:       mocks.NewMockBoardServiceInterface(t),
		task:        mocks.NewMockTaskServiceInterface(t),
		prompt:      mocks.NewMockPromptServiceInterface(t),
		preferences: mocks.NewMockPreferencesServiceInterface(t),
		backup:      mocks.NewMockBackupServiceInterface(t),
		migration:   mocks.NewMockMigrationServiceInterface(t),
	}
	router := NewRouter(Handlers{
		Content:     NewContentHandler(s.content),
		Board:       NewBoardHandler(s.board, s.content),
		Task:        NewTaskHandler(s.task),
		Prompt:      NewPromptHandler(s.prompt),
		Preferences: NewPreferencesHandler(s.preferences),
		Backup:      NewBackupHandler(s.backup),
		Migration:   NewMigrationHandler(s.migration),
		Health:      NewHealthHandler(nil, nil, "test"),
	})
	return router, s
}

func doJSON(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v (body %q)", err, w.Body.String())
	}
	return resp
}
