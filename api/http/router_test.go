package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/api/http/handlers"
	"github.com/artem13815/resume-analyzer/pkg/auth"
	"github.com/artem13815/resume-analyzer/pkg/health"
	"github.com/artem13815/resume-analyzer/pkg/health/checkers"
	sqliterepo "github.com/artem13815/resume-analyzer/pkg/repository/sqlite"
	"github.com/artem13815/resume-analyzer/pkg/resume"
	"github.com/artem13815/resume-analyzer/pkg/security/jwt"
	"github.com/artem13815/resume-analyzer/pkg/storage/sqlite"
)

const (
	testSecret = "test-secret"
	testIssuer = "resume-analyzer-test"
)

// keywordPredictor answers 6 (Data Science) for texts mentioning pandas, 15 otherwise.
type keywordPredictor struct{}

func (keywordPredictor) Name() string { return "keyword" }

func (keywordPredictor) Predict(_ context.Context, cleaned string) (int, error) {
	if strings.Contains(strings.ToLower(cleaned), "pandas") {
		return 6, nil
	}
	return 15, nil
}

func newApp(t *testing.T, withStore bool) *fiber.App {
	t.Helper()
	var repo resume.Repository
	routes := Routes{}
	if withStore {
		db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "api.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		repo = sqliterepo.NewClassificationRepository(db)

		gen := jwt.NewGenerator(testSecret, testIssuer, time.Hour)
		routes.Auth = handlers.NewAuthHandler(auth.NewAuthService(sqliterepo.NewUserRepository(db), gen))
		routes.AuthMW = jwt.NewAuthMiddleware(testSecret, testIssuer)
		routes.OptionalAuthMW = jwt.NewOptionalAuthMiddleware(testSecret, testIssuer)
	}
	svc := resume.NewClassificationService(keywordPredictor{}, repo)
	if withStore {
		routes.Classifications = handlers.NewClassificationsHandler(svc)
	}
	routes.Health = handlers.NewHealthHandler(health.NewService(checkers.NewPredictorChecker(keywordPredictor{})))
	routes.Page = handlers.NewPageHandler(svc, 1024)
	routes.Classify = handlers.NewClassifyHandler(svc, 1024)

	app := fiber.New()
	Register(app, routes)
	return app
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func do(t *testing.T, app *fiber.App, method, path string, body io.Reader, contentType, token string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func classify(t *testing.T, app *fiber.App, filename, content, token string) (int, resume.Result) {
	t.Helper()
	body, ct := multipartBody(t, filename, content)
	status, raw := do(t, app, "POST", "/api/v1/resume/classify", body, ct, token)
	var res resume.Result
	if status == fiber.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &res))
	}
	return status, res
}

func TestPage(t *testing.T) {
	app := newApp(t, false)

	status, body := do(t, app, "GET", "/", nil, "", "")
	assert.Equal(t, 200, status)
	assert.Contains(t, string(body), "Resume Analyzer")
	assert.Contains(t, string(body), "Please upload a PDF or TXT file to analyze.")

	mb, ct := multipartBody(t, "cv.txt", "Skills: Python, Pandas, scikit-learn")
	status, body = do(t, app, "POST", "/", mb, ct, "")
	assert.Equal(t, 200, status)
	assert.Contains(t, string(body), "Predicted Category: Data Science")
	assert.NotContains(t, string(body), "Please upload")

	mb, ct = multipartBody(t, "cv.docx", "whatever")
	status, body = do(t, app, "POST", "/", mb, ct, "")
	assert.Equal(t, 400, status)
	assert.Contains(t, string(body), "unsupported file format")

	status, body = do(t, app, "POST", "/", strings.NewReader("a=b"), fiber.MIMEApplicationForm, "")
	assert.Equal(t, 200, status)
	assert.Contains(t, string(body), "Please upload a PDF or TXT file to analyze.")
}

func TestCategoriesAndHealth(t *testing.T) {
	app := newApp(t, false)

	status, body := do(t, app, "GET", "/api/v1/categories", nil, "", "")
	require.Equal(t, 200, status)
	var entries []struct {
		ID    int    `json:"id"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(body, &entries))
	require.Len(t, entries, 25)
	assert.Equal(t, "Advocate", entries[0].Label)
	assert.Equal(t, "Web Designing", entries[24].Label)

	status, _ = do(t, app, "GET", "/api/v1/health", nil, "", "")
	assert.Equal(t, 200, status)
	status, body = do(t, app, "GET", "/api/v1/ready", nil, "", "")
	assert.Equal(t, 200, status)
	assert.Contains(t, string(body), `"model":"ok"`)
}

func TestClassifyStateless(t *testing.T) {
	app := newApp(t, false)

	status, res := classify(t, app, "cv.txt", "Java, Spring, Hibernate", "")
	require.Equal(t, 200, status)
	assert.Equal(t, 15, res.CategoryID)
	assert.Equal(t, "Java Developer", res.Category)
	assert.Equal(t, "keyword", res.Predictor)
	assert.False(t, res.Saved)

	status, _ = classify(t, app, "cv.doc", "Java", "")
	assert.Equal(t, 400, status)

	status, _ = classify(t, app, "cv.txt", strings.Repeat("x", 2048), "")
	assert.Equal(t, 413, status)

	status, _ = do(t, app, "POST", "/api/v1/resume/classify", strings.NewReader("{}"), fiber.MIMEApplicationJSON, "")
	assert.Equal(t, 400, status)

	// no store: accounts and history are not mounted
	status, _ = do(t, app, "POST", "/api/v1/auth/register", strings.NewReader(`{"email":"a@b.c","password":"x"}`), fiber.MIMEApplicationJSON, "")
	assert.Equal(t, 404, status)
	status, _ = do(t, app, "GET", "/api/v1/classifications", nil, "", "")
	assert.Equal(t, 404, status)
}

func TestHistoryFlow(t *testing.T) {
	app := newApp(t, true)

	status, body := do(t, app, "POST", "/api/v1/auth/register",
		strings.NewReader(`{"email":"ann@example.com","password":"secret"}`), fiber.MIMEApplicationJSON, "")
	require.Equal(t, 201, status, string(body))
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &reg))
	require.NotEmpty(t, reg.Token)

	status, _ = do(t, app, "POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"ann@example.com","password":"wrong"}`), fiber.MIMEApplicationJSON, "")
	assert.Equal(t, 401, status)

	// anonymous upload is stored without an owner and is not in Ann's history
	status, anon := classify(t, app, "anon.txt", "pandas", "")
	require.Equal(t, 200, status)
	assert.True(t, anon.Saved)

	status, mine := classify(t, app, "ann.txt", "Python pandas numpy", reg.Token)
	require.Equal(t, 200, status)
	assert.True(t, mine.Saved)
	assert.Equal(t, "Data Science", mine.Category)

	status, _ = do(t, app, "GET", "/api/v1/classifications", nil, "", "")
	assert.Equal(t, 401, status)

	status, body = do(t, app, "GET", "/api/v1/classifications", nil, "", reg.Token)
	require.Equal(t, 200, status)
	var list []resume.Classification
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	status, _ = do(t, app, "GET", "/api/v1/classifications/"+anon.ID.String(), nil, "", reg.Token)
	assert.Equal(t, 404, status)
	status, _ = do(t, app, "GET", "/api/v1/classifications/not-a-uuid", nil, "", reg.Token)
	assert.Equal(t, 400, status)

	status, body = do(t, app, "GET", "/api/v1/classifications/"+mine.ID.String(), nil, "", reg.Token)
	require.Equal(t, 200, status)
	var got resume.Classification
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "ann.txt", got.Filename)

	status, _ = do(t, app, "DELETE", "/api/v1/classifications/"+mine.ID.String(), nil, "", reg.Token)
	assert.Equal(t, 204, status)
	status, _ = do(t, app, "DELETE", "/api/v1/classifications/"+mine.ID.String(), nil, "", reg.Token)
	assert.Equal(t, 404, status)

	// a present but invalid token is rejected even on the optional route
	status, _ = classify(t, app, "cv.txt", "pandas", "garbage")
	assert.Equal(t, 401, status)
}
