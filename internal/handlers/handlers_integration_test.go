package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shisashop/internal/handlers"
	"shisashop/internal/middleware"
	"shisashop/internal/models"
	"shisashop/internal/repositories"
	"shisashop/internal/services"
	"shisashop/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp boots the full catalog app on in-memory SQLite. The shared
// cache keeps one database per test binary, so tests use distinct
// entity names to stay independent.
func setupApp() (*fiber.App, error) {
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Product{},
		&models.Brand{},
		&models.Category{},
		&models.Flavor{},
		&models.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	uploads, err := storage.NewLocalUploader(filepath.Join(os.TempDir(), "shisashop-test-uploads"))
	if err != nil {
		return nil, fmt.Errorf("failed to set up upload dir: %w", err)
	}

	productRepo := repositories.NewGORMProductRepository(db)
	brandRepo := repositories.NewGORMBrandRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	flavorRepo := repositories.NewGORMFlavorRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// nil event publisher: messaging is disabled under test.
	productService := services.NewProductService(productRepo, brandRepo, flavorRepo, nil)
	brandService := services.NewBrandService(brandRepo, nil)
	categoryService := services.NewCategoryService(categoryRepo, nil)
	flavorService := services.NewFlavorService(flavorRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)

	productHandler := handlers.NewProductHandler(productService, uploads)
	brandHandler := handlers.NewBrandHandler(brandService, uploads)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	flavorHandler := handlers.NewFlavorHandler(flavorService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)

	authRequired := middleware.AuthRequired(authService)
	productHandler.RegisterRoutes(apiV1, authRequired)
	brandHandler.RegisterRoutes(apiV1, authRequired)
	categoryHandler.RegisterRoutes(apiV1, authRequired)
	flavorHandler.RegisterRoutes(apiV1, authRequired)

	return app, nil
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerAndLogin creates a user and returns a bearer token for it.
func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decode(t, resp, &loginResp)
	require.NotEmpty(t, loginResp["token"])
	return loginResp["token"]
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)

	userBody := map[string]string{
		"username": "authflow",
		"email":    "authflow@example.com",
		"password": "password123",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", userBody)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Duplicate registration conflicts.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", userBody)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "authflow",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decode(t, resp, &loginResp)
	assert.NotEmpty(t, loginResp["token"])

	// Wrong password stays a 401.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "authflow",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProductLifecycle(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)
	token := registerAndLogin(t, app, "lifecycle")

	// Missing name is rejected before anything reaches storage.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"price": 10.0,
		"stock": 5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Valid create derives the slug from the name.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":           "Lifecycle Mango Ice",
		"description":    "30ml nic salt",
		"price":          15.5,
		"stock":          25,
		"nicotine_level": "50mg",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Product
	decode(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "lifecycle-mango-ice", created.Slug)
	require.NotNil(t, created.NicotineLevel)
	assert.Equal(t, "50mg", *created.NicotineLevel)

	// Reads are public.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Product
	decode(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	// Partial update: price 0 is explicitly present, name untouched.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/"+created.ID, token, map[string]interface{}{
		"price": 0,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	decode(t, resp, &updated)
	assert.Equal(t, float64(0), updated.Price)
	assert.Equal(t, "Lifecycle Mango Ice", updated.Name)

	// Updating a nonexistent id is a 404.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/nonexistent-id", token, map[string]interface{}{
		"price": 1.0,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Delete, then delete again: the second one is a 404.
	resp = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProductMutationsRequireAuth(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", "", map[string]interface{}{
		"name":  "No Auth Product",
		"price": 10.0,
		"stock": 1,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Reads need no token.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestProductSlugUpdateDerivation(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)
	token := registerAndLogin(t, app, "slugger")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":  "Slugger Original",
		"price": 5.0,
		"stock": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Product
	decode(t, resp, &created)

	// Empty slug plus a new name derives the slug from the name.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/"+created.ID, token, map[string]interface{}{
		"slug": "",
		"name": "Slugger Renamed Thing",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	decode(t, resp, &updated)
	assert.Equal(t, "slugger-renamed-thing", updated.Slug)

	// Empty slug without a name cannot be derived and is rejected.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/"+created.ID, token, map[string]interface{}{
		"slug": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProductEmptyImageListIsNoOp(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)
	token := registerAndLogin(t, app, "imager")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":   "Imager Device",
		"price":  30.0,
		"stock":  3,
		"images": []string{"/uploads/a.jpg"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Product
	decode(t, resp, &created)
	require.Equal(t, []string{"/uploads/a.jpg"}, created.Images)

	// An empty array input leaves the stored list untouched.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/"+created.ID, token, map[string]interface{}{
		"images": []string{},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	decode(t, resp, &updated)
	assert.Equal(t, []string{"/uploads/a.jpg"}, updated.Images)

	// A non-empty list replaces rather than merges.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/"+created.ID, token, map[string]interface{}{
		"images": []string{"/uploads/b.jpg"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var replaced models.Product
	decode(t, resp, &replaced)
	assert.Equal(t, []string{"/uploads/b.jpg"}, replaced.Images)

	// The stored list must survive the round trip: a fresh read decodes
	// the replaced value, so the column holds proper JSON.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var reread models.Product
	decode(t, resp, &reread)
	assert.Equal(t, []string{"/uploads/b.jpg"}, reread.Images)
}

func TestProductSearchAcrossBrands(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)
	token := registerAndLogin(t, app, "searcher")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/brands", token, map[string]interface{}{
		"name": "Searcher VooPoo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var brand models.Brand
	decode(t, resp, &brand)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":     "Searcher Drag X",
		"price":    60.0,
		"stock":    10,
		"brand_id": brand.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var branded models.Product
	decode(t, resp, &branded)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":  "Searcher Plain Liquid",
		"price": 12.0,
		"stock": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// The query matches the brand name only; the product is found
	// through its brand reference and carries the expanded brand.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?search=voopoo", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var results []models.Product
	decode(t, resp, &results)
	require.Len(t, results, 1)
	assert.Equal(t, branded.ID, results[0].ID)
	require.NotNil(t, results[0].Brand)
	assert.Equal(t, "Searcher VooPoo", results[0].Brand.Name)

	// A direct name match still works.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?search=plain+liquid", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var direct []models.Product
	decode(t, resp, &direct)
	require.Len(t, direct, 1)
	assert.Equal(t, "Searcher Plain Liquid", direct[0].Name)
}

func TestProductSearchAcrossFlavors(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)
	token := registerAndLogin(t, app, "flavorist")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/flavors", token, map[string]interface{}{
		"name": "Flavorist Lychee",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var lychee models.Flavor
	decode(t, resp, &lychee)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":    "Flavorist Pod",
		"price":   20.0,
		"stock":   5,
		"flavors": []string{lychee.ID},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var pod models.Product
	decode(t, resp, &pod)

	// The query matches the flavor name only; the product is found
	// through its flavor link and carries the expanded flavor.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?search=lychee", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var results []models.Product
	decode(t, resp, &results)
	require.Len(t, results, 1)
	assert.Equal(t, pod.ID, results[0].ID)
	require.Len(t, results[0].Flavors, 1)
	assert.Equal(t, "Flavorist Lychee", results[0].Flavors[0].Name)
}

func TestProductFlavorReplaceSkipsUnknownIDs(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)
	token := registerAndLogin(t, app, "linker")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/flavors", token, map[string]interface{}{
		"name": "Linker Mango",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var mango models.Flavor
	decode(t, resp, &mango)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":  "Linker Device",
		"price": 40.0,
		"stock": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Product
	decode(t, resp, &created)

	// Replacing the flavor links with a mix of a real and an unknown id
	// keeps only the real link and never materializes a flavor record
	// for the unknown one.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/"+created.ID, token, map[string]interface{}{
		"flavors": []string{mango.ID, "linker-ghost-id"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	decode(t, resp, &updated)
	require.Len(t, updated.Flavors, 1)
	assert.Equal(t, mango.ID, updated.Flavors[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/flavors/linker-ghost-id", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProductCreateMultipart(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)
	token := registerAndLogin(t, app, "uploader")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/flavors", token, map[string]interface{}{
		"name": "Uploader Tobacco",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tobacco models.Flavor
	decode(t, resp, &tobacco)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Uploader Boxed Mod"))
	require.NoError(t, writer.WriteField("price", "75.50"))
	require.NoError(t, writer.WriteField("stock", "4"))
	// Form fields are strings, so the flavor list arrives comma-separated.
	require.NoError(t, writer.WriteField("flavors", tobacco.ID))
	part, err := writer.CreateFormFile("images", "mod.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-a-real-png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Product
	decode(t, resp, &created)
	assert.Equal(t, "uploader-boxed-mod", created.Slug)
	assert.Equal(t, 75.50, created.Price)
	assert.Equal(t, 4, created.Stock)
	require.Len(t, created.Images, 1)
	assert.True(t, strings.HasPrefix(created.Images[0], "/uploads/"))
	assert.True(t, strings.HasSuffix(created.Images[0], "mod.png"))

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Product
	decode(t, resp, &fetched)
	require.Len(t, fetched.Flavors, 1)
	assert.Equal(t, "Uploader Tobacco", fetched.Flavors[0].Name)
}

func TestCategoryReferenceNormalization(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)
	token := registerAndLogin(t, app, "categorizer")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/brands", token, map[string]interface{}{
		"name": "Categorizer Brand A",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var brandA models.Brand
	decode(t, resp, &brandA)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/brands", token, map[string]interface{}{
		"name": "Categorizer Brand B",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var brandB models.Brand
	decode(t, resp, &brandB)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/flavors", token, map[string]interface{}{
		"name": "Categorizer Mint",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var mint models.Flavor
	decode(t, resp, &mint)

	// brands arrives as a JSON-encoded array string, flavors as a
	// comma-separated string; both normalize to id lists.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/categories", token, map[string]interface{}{
		"name":    "Categorizer Disposables",
		"brands":  fmt.Sprintf(`["%s","%s"]`, brandA.ID, brandB.ID),
		"flavors": fmt.Sprintf(" %s , ", mint.ID),
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Category
	decode(t, resp, &created)
	assert.Equal(t, "categorizer-disposables", created.Slug)

	// The read expands references into full records.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/categories/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Category
	decode(t, resp, &fetched)
	assert.Len(t, fetched.Brands, 2)
	require.Len(t, fetched.Flavors, 1)
	assert.Equal(t, "Categorizer Mint", fetched.Flavors[0].Name)

	// Replacing the brand links drops an unknown id instead of
	// materializing a brand record for it.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/categories/"+created.ID, token, map[string]interface{}{
		"brands": []string{brandA.ID, "categorizer-ghost-id"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Category
	decode(t, resp, &updated)
	require.Len(t, updated.Brands, 1)
	assert.Equal(t, brandA.ID, updated.Brands[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/brands/categorizer-ghost-id", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestBrandSearchAndLifecycle(t *testing.T) {
	app, err := setupApp()
	require.NoError(t, err)
	token := registerAndLogin(t, app, "brander")

	// Name is required.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/brands", token, map[string]interface{}{
		"description": "nameless",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/brands", token, map[string]interface{}{
		"name": "Brander Elf Bar",
		"logo": "/uploads/elfbar.png",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Brand
	decode(t, resp, &created)
	assert.Equal(t, "brander-elf-bar", created.Slug)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/brands?search=brander+elf", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var brands []models.Brand
	decode(t, resp, &brands)
	require.Len(t, brands, 1)
	assert.Equal(t, created.ID, brands[0].ID)

	// Sparse update: logo only, name untouched.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/brands/"+created.ID, token, map[string]interface{}{
		"logo": "/uploads/elfbar-v2.png",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Brand
	decode(t, resp, &updated)
	assert.Equal(t, "/uploads/elfbar-v2.png", updated.Logo)
	assert.Equal(t, "Brander Elf Bar", updated.Name)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/brands/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/brands/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
