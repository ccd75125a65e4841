package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"careerhub/internal/adapters/http/middleware"
	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/storage"
	"careerhub/internal/config"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/password"
	"careerhub/internal/testutil"

	_ "careerhub/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost
	os.Exit(m.Run())
}

type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   string              `json:"error"`
	Fields  []domain.FieldError `json:"fields"`
}

type server struct {
	t     *testing.T
	app   *fiber.App
	db    *gorm.DB
	certs *storage.MemoryStore
}

func newServer(t *testing.T) *server {
	t.Helper()

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "access-secret",
			RefreshSecret:    "refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
		Upload: config.UploadConfig{MaxBytes: 1 << 20},
	}
	db := testutil.NewDB(t)
	certs := storage.NewMemoryStore()

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	middleware.Setup(app, cfg)
	Setup(app, db, cfg, Stores{Documents: storage.NewMemoryStore(), Certificates: certs})

	return &server{t: t, app: app, db: db, certs: certs}
}

func (s *server) send(req *http.Request, token string) (*http.Response, envelope) {
	s.t.Helper()
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)

	var env envelope
	if resp.Header.Get(fiber.HeaderContentType) == fiber.MIMEApplicationJSON {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func (s *server) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, env := s.send(req, token)
	return resp.StatusCode, env
}

func (s *server) register(email string) string {
	s.t.Helper()
	status, env := s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "correct-horse",
		"name":     "Test User",
	})
	require.Equal(s.t, fiber.StatusCreated, status, env.Error)
	return field(s.t, env.Data, "access_token")
}

func (s *server) admin() string {
	s.t.Helper()
	s.register("admin@example.com")
	require.NoError(s.t, s.db.Model(&models.User{}).Where("email = ?", "admin@example.com").Update("role", "ADMIN").Error)

	status, env := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "correct-horse",
	})
	require.Equal(s.t, fiber.StatusOK, status)
	return field(s.t, env.Data, "access_token")
}

// field pulls a string out of data by a dotted path of object keys
func field(t *testing.T, data json.RawMessage, keys ...string) string {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal(data, &v))
	for _, k := range keys {
		m, ok := v.(map[string]interface{})
		require.True(t, ok, "expected object at %q", k)
		v = m[k]
	}
	s, ok := v.(string)
	require.True(t, ok, "expected string at %v", keys)
	return s
}

func career() map[string]interface{} {
	return map[string]interface{}{
		"company_name":    "Acme",
		"position":        "Engineer",
		"start_date":      "2020-01-01",
		"end_date":        "2021-01-31",
		"job_category":    "development",
		"job_description": "Built the billing system",
		"technologies":    []string{"Go", "MySQL"},
	}
}

func TestCertificateFlow(t *testing.T) {
	s := newServer(t)
	user := s.register("jane@example.com")
	admin := s.admin()

	status, env := s.do(http.MethodPost, "/api/v1/careers", user, career())
	require.Equal(t, fiber.StatusCreated, status, env.Error)
	careerID := field(t, env.Data, "career", "id")
	assert.Equal(t, "draft", field(t, env.Data, "career", "status"))

	status, _ = s.do(http.MethodPost, "/api/v1/careers/"+careerID+"/submit", user, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = s.do(http.MethodPut, "/api/v1/admin/reviews/"+careerID, user, map[string]string{"status": "approved"})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env = s.do(http.MethodPut, "/api/v1/admin/reviews/"+careerID, admin, map[string]string{"status": "approved"})
	require.Equal(t, fiber.StatusOK, status, env.Error)

	status, env = s.do(http.MethodPost, "/api/v1/certificates", user, map[string]interface{}{
		"career_ids": []string{careerID},
		"purpose":    "visa application",
	})
	require.Equal(t, fiber.StatusCreated, status, env.Error)

	var created struct {
		Certificates []models.CertificateResponse `json:"certificates"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Len(t, created.Certificates, 1)
	certID := created.Certificates[0].ID
	assert.Equal(t, "pending", created.Certificates[0].Status)
	require.NotNil(t, created.Certificates[0].Career)
	assert.Equal(t, "Acme", created.Certificates[0].Career.CompanyName)

	pdf := testutil.MinimalPDF(1)
	status, env = s.upload("/api/v1/admin/certificates/"+certID+"/upload", admin, map[string]string{
		"certificate_number": "CERT-0001",
		"issue_date":         "2024-02-01",
	}, pdf)
	require.Equal(t, fiber.StatusOK, status, env.Error)
	assert.Equal(t, "issued", field(t, env.Data, "certificate", "status"))
	assert.Equal(t, "2024-02-01", field(t, env.Data, "certificate", "issue_date"))

	status, _ = s.upload("/api/v1/admin/certificates/"+certID+"/upload", admin, map[string]string{
		"certificate_number": "CERT-0002",
	}, pdf)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, 1, s.certs.Len())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/certificates/"+certID+"/download", nil)
	resp, _ := s.send(req, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, pdf, body)

	status, _ = s.do(http.MethodDelete, "/api/v1/careers/"+careerID, user, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env = s.do(http.MethodGet, "/api/v1/careers/statistics", user, nil)
	require.Equal(t, fiber.StatusOK, status)
	var stats domain.CareerStatistics
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.ApprovedCareers)
	assert.Equal(t, 396, stats.TotalExperience.TotalDays)
}

func (s *server) upload(path, token string, fields map[string]string, file []byte) (int, envelope) {
	s.t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("file", "certificate.pdf")
	require.NoError(s.t, err)
	_, err = part.Write(file)
	require.NoError(s.t, err)
	require.NoError(s.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	resp, env := s.send(req, token)
	return resp.StatusCode, env
}

func TestCareerValidationReportsEveryField(t *testing.T) {
	s := newServer(t)
	user := s.register("jane@example.com")

	status, env := s.do(http.MethodPost, "/api/v1/careers", user, map[string]interface{}{
		"start_date":   "2021-05-01",
		"end_date":     "2020-01-01",
		"job_category": "astrology",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)

	var names []string
	for _, f := range env.Fields {
		names = append(names, f.Field)
	}
	assert.Subset(t, names, []string{"company_name", "position", "job_category", "job_description", "end_date"})
}

func TestCertificateRequest_Errors(t *testing.T) {
	s := newServer(t)
	user := s.register("jane@example.com")

	status, env := s.do(http.MethodPost, "/api/v1/certificates", user, map[string]interface{}{
		"career_ids": []string{},
		"purpose":    "visa",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Len(t, env.Fields, 1)
	assert.Equal(t, "career_ids", env.Fields[0].Field)
	assert.Equal(t, "no careers selected", env.Fields[0].Message)

	status, _ = s.do(http.MethodPost, "/api/v1/certificates", user, map[string]interface{}{
		"career_ids": []string{"missing"},
		"purpose":    "visa",
	})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = s.do(http.MethodPost, "/api/v1/careers", user, career())
	require.Equal(t, fiber.StatusCreated, status)
	draftID := field(t, env.Data, "career", "id")

	status, _ = s.do(http.MethodPost, "/api/v1/certificates", user, map[string]interface{}{
		"career_ids": []string{draftID},
		"purpose":    "visa",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestAuthGuards(t *testing.T) {
	s := newServer(t)

	status, _ := s.do(http.MethodGet, "/api/v1/careers", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = s.do(http.MethodGet, "/api/v1/careers", "not-a-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	user := s.register("jane@example.com")
	status, _ = s.do(http.MethodGet, "/api/v1/admin/users", user, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env := s.do(http.MethodGet, "/api/v1/auth/me", user, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "jane@example.com", field(t, env.Data, "user", "email"))

	status, _ = s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = s.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "jane@example.com",
		"password": "correct-horse",
		"name":     "Again",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestPublicEndpoints(t *testing.T) {
	s := newServer(t)
	admin := s.admin()

	status, env := s.do(http.MethodPost, "/api/v1/admin/notices", admin, map[string]interface{}{
		"category": "system",
		"title":    "Maintenance",
		"content":  "Sunday 02:00",
	})
	require.Equal(t, fiber.StatusCreated, status, env.Error)
	assert.Equal(t, "admin@example.com", field(t, env.Data, "notice", "author"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notices", nil)
	resp, env := s.send(req, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderCacheControl), "public")
	assert.Contains(t, string(env.Data), "Maintenance")

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDocumentUploadAndDashboard(t *testing.T) {
	s := newServer(t)
	user := s.register("jane@example.com")

	status, env := s.upload("/api/v1/documents", user, map[string]string{"category": "identity"}, testutil.MinimalPDF(3))
	require.Equal(t, fiber.StatusCreated, status, env.Error)

	var doc models.Document
	require.NoError(t, json.Unmarshal(mustRaw(t, env.Data, "document"), &doc))
	require.NotNil(t, doc.PageCount)
	assert.Equal(t, 3, *doc.PageCount)

	status, env = s.upload("/api/v1/documents", user, map[string]string{"category": "selfie"}, testutil.MinimalPDF(1))
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Len(t, env.Fields, 1)
	assert.Equal(t, "category", env.Fields[0].Field)

	status, env = s.do(http.MethodGet, "/api/v1/dashboard", user, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"documents":1`)
}

func mustRaw(t *testing.T, data json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	return m[key]
}
