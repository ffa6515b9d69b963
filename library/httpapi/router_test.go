package httpapi_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/bootstrapadmin"
	"github.com/Chalhotra/LibMgmt/library/features/command/registeruser"
	"github.com/Chalhotra/LibMgmt/library/features/query/borrowinghistory"
	"github.com/Chalhotra/LibMgmt/library/features/query/bookswithstatus"
	"github.com/Chalhotra/LibMgmt/library/features/query/pendingadminrequests"
	"github.com/Chalhotra/LibMgmt/library/httpapi"
	"github.com/Chalhotra/LibMgmt/library/httpapi/auth"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/testutil/helper"
	"github.com/Chalhotra/LibMgmt/testutil/memstore"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	adminName     = "admin"
	adminPassword = "admin-password"
	userPassword  = "correct-horse"
)

type api struct {
	t        *testing.T
	store    *memstore.Store
	router   http.Handler
	registry *prometheus.Registry
	now      time.Time
}

func givenAPI(t *testing.T) *api {
	t.Helper()

	return givenAPIWith(t, httpapi.Observability{})
}

func givenAPIWith(t *testing.T, obs httpapi.Observability, opts ...httpapi.Option) *api {
	t.Helper()

	a := &api{
		t:        t,
		store:    memstore.New(),
		registry: prometheus.NewRegistry(),
		now:      time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}

	handlers, err := httpapi.NewHandlers(
		a.store,
		core.DefaultPolicy(),
		obs,
		registeruser.WithHashCost(bcrypt.MinCost),
	)
	require.NoError(t, err)

	issuer, err := auth.NewIssuer("router-test-secret", time.Hour)
	require.NoError(t, err)

	_, err = bootstrapadmin.NewCommandHandler(a.store, bcrypt.MinCost).Handle(
		context.Background(),
		bootstrapadmin.BuildCommand(uuid.New(), adminName, adminPassword, a.now),
	)
	require.NoError(t, err)

	a.router = httpapi.NewRouter(
		httpapi.Dependencies{Handlers: handlers, Issuer: issuer, Registry: a.registry, Pinger: a.store},
		append([]httpapi.Option{httpapi.WithClock(func() time.Time { return a.now })}, opts...)...,
	)

	return a
}

func (a *api) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func (a *api) login(username, password string) httpapi.TokenView {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	return decode[httpapi.TokenView](a.t, rec)
}

func (a *api) registerAndLogin(username string) httpapi.TokenView {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/auth/register", "", map[string]string{"username": username, "password": userPassword})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	return a.login(username, userPassword)
}

func (a *api) addBook(adminToken, title string, quantity int) httpapi.BookView {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/books", adminToken, map[string]any{"title": title, "author": "Frank Herbert", "quantity": quantity})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[httpapi.BookView](a.t, rec)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func Test_Router_Healthz(t *testing.T) {
	// setup
	a := givenAPI(t)

	// act
	rec := a.do(http.MethodGet, "/healthz", "", nil)

	// assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func Test_Router_Readyz_ReportsUnreachableStore(t *testing.T) {
	// setup
	a := givenAPI(t)
	a.store.FailTransactionsWith(errors.New("connection refused"))

	// act
	rec := a.do(http.MethodGet, "/readyz", "", nil)

	// assert
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func Test_Router_RegisterThenLogin(t *testing.T) {
	// setup
	a := givenAPI(t)

	// act
	registered := a.do(http.MethodPost, "/auth/register", "", map[string]string{"username": "alice", "password": userPassword})
	token := a.login("alice", userPassword)

	// assert
	assert.Equal(t, http.StatusCreated, registered.Code)
	user := decode[httpapi.UserView](t, registered)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, user.UserID, token.UserID)
	assert.NotEmpty(t, token.Token)
	assert.False(t, token.IsAdmin)
}

func Test_Router_RejectsDuplicateUsernameAndWrongPassword(t *testing.T) {
	// setup
	a := givenAPI(t)
	a.registerAndLogin("alice")

	// act
	duplicate := a.do(http.MethodPost, "/auth/register", "", map[string]string{"username": "alice", "password": userPassword})
	wrongPassword := a.do(http.MethodPost, "/auth/login", "", map[string]string{"username": "alice", "password": "not-the-password"})

	// assert
	assert.Equal(t, http.StatusConflict, duplicate.Code)
	assert.Equal(t, http.StatusForbidden, wrongPassword.Code)
	assert.Equal(t, httpapi.ErrorResponse{Kind: "Forbidden", Message: "invalid credentials"}, decode[httpapi.ErrorResponse](t, wrongPassword))
}

func Test_Router_RejectsMalformedBody(t *testing.T) {
	// setup
	a := givenAPI(t)

	// act
	rec := a.do(http.MethodPost, "/auth/register", "", map[string]string{"name": "alice"})

	// assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid", decode[httpapi.ErrorResponse](t, rec).Kind)
}

func Test_Router_RequiresBearerToken(t *testing.T) {
	// setup
	a := givenAPI(t)

	// act
	missing := a.do(http.MethodGet, "/books", "", nil)
	garbage := a.do(http.MethodGet, "/books", "not-a-jwt", nil)

	// assert
	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Equal(t, httpapi.ErrorResponse{Kind: "Unauthenticated", Message: "missing bearer token"}, decode[httpapi.ErrorResponse](t, missing))
	assert.Equal(t, http.StatusUnauthorized, garbage.Code)
	assert.Equal(t, "invalid token", decode[httpapi.ErrorResponse](t, garbage).Message)
}

func Test_Router_CurrentUserEchoesPrincipal(t *testing.T) {
	// setup
	a := givenAPI(t)
	alice := a.registerAndLogin("alice")
	admin := a.login(adminName, adminPassword)

	// act
	aliceRec := a.do(http.MethodGet, "/me", alice.Token, nil)
	adminRec := a.do(http.MethodGet, "/me", admin.Token, nil)
	anonymous := a.do(http.MethodGet, "/me", "", nil)

	// assert
	require.Equal(t, http.StatusOK, aliceRec.Code, aliceRec.Body.String())
	assert.Equal(t, httpapi.UserView{UserID: alice.UserID, Username: "alice"}, decode[httpapi.UserView](t, aliceRec))

	require.Equal(t, http.StatusOK, adminRec.Code, adminRec.Body.String())
	assert.Equal(t, httpapi.UserView{UserID: admin.UserID, Username: adminName, IsAdmin: true}, decode[httpapi.UserView](t, adminRec))

	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
}

func Test_Router_NonAdminCannotManageInventory(t *testing.T) {
	// setup
	a := givenAPI(t)
	alice := a.registerAndLogin("alice")

	// act
	rec := a.do(http.MethodPost, "/books", alice.Token, map[string]any{"title": "Dune", "author": "Frank Herbert", "quantity": 1})

	// assert
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, httpapi.ErrorResponse{Kind: "Forbidden", Message: "admin rights required"}, decode[httpapi.ErrorResponse](t, rec))
}

func Test_Router_AddingExistingTitleRestocks(t *testing.T) {
	// setup
	a := givenAPI(t)
	admin := a.login(adminName, adminPassword)
	added := a.addBook(admin.Token, "Dune", 1)

	// act
	rec := a.do(http.MethodPost, "/books", admin.Token, map[string]any{"title": "Dune", "author": "Frank Herbert", "quantity": 2})

	// assert
	assert.Equal(t, http.StatusOK, rec.Code)
	restocked := decode[httpapi.BookView](t, rec)
	assert.Equal(t, added.BookID, restocked.BookID)
	assert.Equal(t, 3, restocked.Quantity)
}

func Test_Router_CheckoutLifecycle(t *testing.T) {
	// setup
	a := givenAPI(t)
	admin := a.login(adminName, adminPassword)
	alice := a.registerAndLogin("alice")
	dune := a.addBook(admin.Token, "Dune", 2)

	// act
	requested := a.do(http.MethodPost, "/books/"+dune.BookID+"/checkouts", alice.Token, nil)
	checkout := decode[httpapi.CheckoutView](t, requested)
	approved := a.do(http.MethodPost, "/admin/checkout-requests/"+checkout.CheckoutID+"/approve", admin.Token, nil)
	a.now = a.now.Add(20 * 24 * time.Hour)
	checkedIn := a.do(http.MethodPost, "/checkouts/"+checkout.CheckoutID+"/checkin", alice.Token, nil)
	history := a.do(http.MethodGet, "/me/history", alice.Token, nil)

	// assert
	assert.Equal(t, http.StatusCreated, requested.Code)
	assert.Equal(t, "pending", checkout.Status)
	require.NotNil(t, checkout.BookQuantity)
	assert.Equal(t, 1, *checkout.BookQuantity)

	assert.Equal(t, http.StatusOK, approved.Code)
	assert.Equal(t, "approved", decode[httpapi.CheckoutView](t, approved).Status)

	assert.Equal(t, http.StatusOK, checkedIn.Code)
	returned := decode[httpapi.CheckoutView](t, checkedIn)
	assert.Equal(t, int64(6), returned.Fine)
	require.NotNil(t, returned.BookQuantity)
	assert.Equal(t, 2, *returned.BookQuantity)

	assert.Equal(t, http.StatusOK, history.Code)
	checkouts := decode[borrowinghistory.BorrowingHistory](t, history)
	require.Equal(t, 1, checkouts.Count)
	assert.Equal(t, int64(6), checkouts.Checkouts[0].Fine)
	assert.NotNil(t, checkouts.Checkouts[0].ReturnDate)
}

func Test_Router_MapsErrorKindsToStatusCodes(t *testing.T) {
	// setup
	a := givenAPI(t)
	admin := a.login(adminName, adminPassword)
	alice := a.registerAndLogin("alice")
	bob := a.registerAndLogin("bob")
	lastCopy := a.addBook(admin.Token, "Dune", 1)
	first := decode[httpapi.CheckoutView](t, a.do(http.MethodPost, "/books/"+lastCopy.BookID+"/checkouts", alice.Token, nil))

	testCases := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
		wantKind   string
	}{
		{"second request for same book", http.MethodPost, "/books/" + lastCopy.BookID + "/checkouts", alice.Token, http.StatusConflict, "Conflict"},
		{"no copy left", http.MethodPost, "/books/" + lastCopy.BookID + "/checkouts", bob.Token, http.StatusUnprocessableEntity, "Unavailable"},
		{"unknown book", http.MethodPost, "/books/" + uuid.NewString() + "/checkouts", alice.Token, http.StatusNotFound, "NotFound"},
		{"malformed id", http.MethodPost, "/books/not-a-uuid/checkouts", alice.Token, http.StatusBadRequest, "Invalid"},
		{"return of another user's checkout", http.MethodPost, "/checkouts/" + first.CheckoutID + "/checkin", bob.Token, http.StatusForbidden, "Forbidden"},
		{"non-admin lists requests", http.MethodGet, "/admin/checkout-requests", alice.Token, http.StatusForbidden, "Forbidden"},
		{"delete book with open request", http.MethodDelete, "/books/" + lastCopy.BookID, admin.Token, http.StatusConflict, "Conflict"},
		{"unknown route", http.MethodGet, "/nowhere", alice.Token, http.StatusNotFound, "NotFound"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			rec := a.do(tc.method, tc.path, tc.token, nil)

			// assert
			assert.Equal(t, tc.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tc.wantKind, decode[httpapi.ErrorResponse](t, rec).Kind)
		})
	}
}

func Test_StatusFor_CoversEveryKind(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, httpapi.StatusFor(core.KindNotFound))
	assert.Equal(t, http.StatusForbidden, httpapi.StatusFor(core.KindForbidden))
	assert.Equal(t, http.StatusConflict, httpapi.StatusFor(core.KindConflict))
	assert.Equal(t, http.StatusUnprocessableEntity, httpapi.StatusFor(core.KindUnavailable))
	assert.Equal(t, http.StatusBadRequest, httpapi.StatusFor(core.KindInvalid))
	assert.Equal(t, http.StatusInternalServerError, httpapi.StatusFor(core.KindStorage))
}

func Test_Router_HidesStorageDetailsFromNonAdmins(t *testing.T) {
	// setup
	a := givenAPI(t)
	admin := a.login(adminName, adminPassword)
	alice := a.registerAndLogin("alice")
	a.store.FailTransactionsWith(errors.New("connection reset by peer"))

	// act
	forUser := a.do(http.MethodGet, "/books", alice.Token, nil)
	forAdmin := a.do(http.MethodGet, "/books", admin.Token, nil)

	// assert
	assert.Equal(t, http.StatusInternalServerError, forUser.Code)
	assert.Equal(t, httpapi.ErrorResponse{Kind: "StorageError", Message: "storage error"}, decode[httpapi.ErrorResponse](t, forUser))
	assert.Equal(t, http.StatusInternalServerError, forAdmin.Code)
	assert.Contains(t, decode[httpapi.ErrorResponse](t, forAdmin).Message, "connection reset by peer")
}

func Test_Router_AdminRequestFlow(t *testing.T) {
	// setup
	a := givenAPI(t)
	admin := a.login(adminName, adminPassword)
	alice := a.registerAndLogin("alice")

	// act
	requested := a.do(http.MethodPost, "/me/admin-request", alice.Token, nil)
	pending := a.do(http.MethodGet, "/admin/admin-requests", admin.Token, nil)
	approved := a.do(http.MethodPost, "/admin/admin-requests/"+alice.UserID+"/approve", admin.Token, nil)
	again := a.do(http.MethodPost, "/me/admin-request", alice.Token, nil)
	relogged := a.login("alice", userPassword)

	// assert
	assert.Equal(t, http.StatusAccepted, requested.Code)
	assert.Equal(t, "pending", decode[httpapi.UserView](t, requested).AdminRequestStatus)

	queue := decode[pendingadminrequests.PendingAdminRequests](t, pending)
	require.Equal(t, 1, queue.Count)
	assert.Equal(t, "alice", queue.Requests[0].Username)

	assert.Equal(t, http.StatusOK, approved.Code)
	assert.True(t, decode[httpapi.UserView](t, approved).IsAdmin)
	assert.Equal(t, http.StatusConflict, again.Code)
	assert.True(t, relogged.IsAdmin)
}

func Test_Router_ListAndSearchBooks(t *testing.T) {
	// setup
	a := givenAPI(t)
	admin := a.login(adminName, adminPassword)
	a.addBook(admin.Token, "Dune", 1)
	a.addBook(admin.Token, "Children of Dune", 2)

	// act
	listed := a.do(http.MethodGet, "/books", admin.Token, nil)
	searched := a.do(http.MethodGet, "/books/search?q=children&available=true", admin.Token, nil)
	badFlag := a.do(http.MethodGet, "/books/search?available=maybe", admin.Token, nil)

	// assert
	assert.Equal(t, http.StatusOK, listed.Code)
	assert.Equal(t, 2, decode[bookswithstatus.BooksWithStatus](t, listed).Count)
	assert.Equal(t, http.StatusOK, searched.Code)
	assert.Contains(t, searched.Body.String(), "Children of Dune")
	assert.NotContains(t, searched.Body.String(), `"title":"Dune"`)
	assert.Equal(t, http.StatusBadRequest, badFlag.Code)
}

func Test_Router_EchoesRequestID(t *testing.T) {
	// setup
	a := givenAPI(t)
	requestID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	req.Header.Set("X-Request-ID", requestID)
	rec := httptest.NewRecorder()

	// act
	a.router.ServeHTTP(rec, req)

	// assert
	assert.Equal(t, requestID, rec.Header().Get("X-Request-ID"))
}

func Test_Router_ExposesRequestMetrics(t *testing.T) {
	// setup
	a := givenAPI(t)
	a.do(http.MethodGet, "/healthz", "", nil)

	// act
	rec := a.do(http.MethodGet, "/metrics", "", nil)

	// assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `libmgmt_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func Test_NewHandlers_WrapsHandlersWithObservability(t *testing.T) {
	// setup
	metrics := helper.NewMetricsCollectorSpy(true)
	logger := helper.NewContextualLoggerSpy(true)
	a := givenAPIWith(t, httpapi.Observability{Metrics: metrics, Logger: logger}, httpapi.WithLogger(logger))
	alice := a.registerAndLogin("alice")
	a.store.FailTransactionsWith(errors.New("connection reset by peer"))

	// act
	rec := a.do(http.MethodGet, "/books", alice.Token, nil)

	// assert
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, metrics.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).Assert())
	assert.True(t, metrics.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).Assert())
	assert.True(t, logger.HasErrorLog("http request failed"))
}

func Test_Router_RejectsRestockAboveMaximum(t *testing.T) {
	// setup
	a := givenAPI(t)
	admin := a.login(adminName, adminPassword)
	a.addBook(admin.Token, "Dune", core.MaxBookQuantity)

	// act
	rec := a.do(http.MethodPost, "/books", admin.Token, map[string]any{"title": "Dune", "author": "Frank Herbert", "quantity": 1})

	// assert
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, string(core.KindInvalid), decode[httpapi.ErrorResponse](t, rec).Kind)
}
