package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authmw "github.com/avoronin/metiz-market/internal/middleware/auth"
	"github.com/avoronin/metiz-market/internal/models"
	"github.com/avoronin/metiz-market/internal/repo"
	"github.com/avoronin/metiz-market/internal/service"
)

type testEnv struct {
	T *testing.T
	E *echo.Echo
	R *repo.GormRepo
	M *MetizHTTP
	B *BasketHTTP
	O *OrderHTTP
	V *ReviewHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Metiz{},
		&models.Product{},
		&models.Basket{},
		&models.BasketItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	))

	r := repo.New(db)
	return &testEnv{
		T: t,
		E: echo.New(),
		R: r,
		M: &MetizHTTP{Svc: &service.CatalogService{Repo: r}},
		B: &BasketHTTP{Svc: &service.BasketService{Repo: r}},
		O: &OrderHTTP{Svc: &service.OrderService{Repo: r}},
		V: &ReviewHTTP{Svc: &service.ReviewService{Repo: r}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func asUser(c echo.Context, userID uint) {
	c.Set(authmw.CtxUserID, userID)
	c.Set(authmw.CtxRole, "user")
}

func asMetiz(c echo.Context, metizID uint) {
	c.Set(authmw.CtxMetizID, metizID)
	c.Set(authmw.CtxRole, "metiz")
}

func seedCatalog(t *testing.T, r *repo.GormRepo) (*models.Metiz, *models.Product, *models.Product) {
	t.Helper()

	metiz := &models.Metiz{Name: "bolts", ContactPersonName: "c", Phone: "p", Email: "bolts@example.com", PasswordHash: "x", Address: "a"}
	require.NoError(t, r.DB.Create(metiz).Error)
	other := &models.Metiz{Name: "nuts", ContactPersonName: "c", Phone: "p", Email: "nuts@example.com", PasswordHash: "x", Address: "a"}
	require.NoError(t, r.DB.Create(other).Error)

	productA := &models.Product{MetizID: metiz.ID, Name: "bolt M8", Description: "d", Price: 100}
	require.NoError(t, r.DB.Create(productA).Error)
	productB := &models.Product{MetizID: other.ID, Name: "nut M8", Description: "d", Price: 50}
	require.NoError(t, r.DB.Create(productB).Error)

	return metiz, productA, productB
}

func TestBasketHTTP_AddItem(t *testing.T) {
	env := newTestEnv(t)
	_, productA, _ := seedCatalog(t, env.R)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/basket/items", map[string]uint{
		"product_id": productA.ID,
		"quantity":   2,
	})
	asUser(c, 1)

	require.NoError(t, env.B.AddItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.BasketItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, productA.ID, resp.ProductID)
	require.Equal(t, uint(2), resp.Quantity)
	require.Equal(t, "bolt M8", resp.Product.Name)
}

func TestBasketHTTP_AddItem_VendorConflict(t *testing.T) {
	env := newTestEnv(t)
	_, productA, productB := seedCatalog(t, env.R)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/basket/items", map[string]uint{
		"product_id": productA.ID,
		"quantity":   1,
	})
	asUser(c, 1)
	require.NoError(t, env.B.AddItem(c))

	_, c = env.doJSONRequest(http.MethodPost, "/api/v1/basket/items", map[string]uint{
		"product_id": productB.ID,
		"quantity":   1,
	})
	asUser(c, 1)

	err := env.B.AddItem(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusConflict, he.Code)
}

func TestOrderHTTP_CreateOrder_EmptyBasket(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]string{
		"delivery_address": "ул. Ленина, 1",
	})
	asUser(c, 1)

	err := env.O.CreateOrder(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestOrderHTTP_CreateOrder(t *testing.T) {
	env := newTestEnv(t)
	metiz, productA, _ := seedCatalog(t, env.R)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/basket/items", map[string]uint{
		"product_id": productA.ID,
		"quantity":   3,
	})
	asUser(c, 1)
	require.NoError(t, env.B.AddItem(c))

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]string{
		"delivery_address": "ул. Ленина, 1",
	})
	asUser(c, 1)
	require.NoError(t, env.O.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(300), resp.TotalCost)
	require.Equal(t, models.StatusPending, resp.Status)
	require.Equal(t, metiz.ID, resp.MetizID)
	require.Len(t, resp.Items, 1)
}

func TestMetizHTTP_GetMetiz(t *testing.T) {
	env := newTestEnv(t)
	metiz, _, _ := seedCatalog(t, env.R)

	rec, c := env.doJSONRequest(http.MethodGet, fmt.Sprintf("/api/v1/metiz/%d", metiz.ID), nil)
	c.SetParamNames("metizId")
	c.SetParamValues(fmt.Sprint(metiz.ID))

	require.NoError(t, env.M.GetMetiz(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Metiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "bolts", resp.Name)
	require.NotContains(t, rec.Body.String(), "password", "credentials never leave the server")
}

func TestMetizHTTP_PatchProfile(t *testing.T) {
	env := newTestEnv(t)
	metiz, _, _ := seedCatalog(t, env.R)

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/metiz/profile", map[string]string{
		"phone":       "+78121112233",
		"description": "крепёж оптом",
	})
	asMetiz(c, metiz.ID)

	require.NoError(t, env.M.PatchProfile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Metiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "+78121112233", resp.Phone)
	require.Equal(t, "bolts", resp.Name)
}

func TestReviewHTTP_CreateReview_WrongState(t *testing.T) {
	env := newTestEnv(t)

	order := &models.Order{UserID: 1, MetizID: 1, Name: "n", DeliveryAddress: "a", TotalCost: 100, Status: models.StatusPending}
	require.NoError(t, env.R.DB.Create(order).Error)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/reviews", map[string]any{
		"order_id":     order.ID,
		"rating":       5,
		"short_review": "ok",
		"description":  "ok",
	})
	asUser(c, 1)

	err := env.V.CreateReview(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusConflict, he.Code)
}
