package routes

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"camrental/internal/database"
	"camrental/internal/entities"
	"camrental/internal/repositories"
	"camrental/internal/services"
	"camrental/internal/views"
	"camrental/pkg/constants"
	"camrental/pkg/session"
	"camrental/pkg/validation"
)

type WebRouterTestSuite struct {
	suite.Suite
	Echo     *echo.Echo
	DB       *sql.DB
	Sessions *session.Manager
	EquipID  uint64
}

func (suite *WebRouterTestSuite) SetupSuite() {
	ctx := context.Background()
	logger := zap.NewNop()

	db, err := database.Connect(ctx, ":memory:")
	suite.Require().NoError(err)
	// the in-memory database only exists on one connection
	db.SetMaxOpenConns(1)
	suite.DB = db

	suite.Sessions = session.NewManager(session.NewMemoryStore(), time.Hour)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = views.NewRenderer()
	e.Validator = validation.NewEchoValidator()
	InitRouter(e, db, suite.Sessions, logger)
	suite.Echo = e

	// minimal fixtures: one staff account and one bookable equipment type
	branchRepo := repositories.NewBranchRepository(db, logger)
	suite.Require().NoError(branchRepo.Create(ctx, entities.Branch{Code: "DT", Name: "Downtown"}))

	categoryRepo := repositories.NewCategoryRepository(db, logger)
	suite.Require().NoError(categoryRepo.Create(ctx, entities.Category{Code: "CAM", Name: "Cameras"}))

	hash, err := services.HashPassword("clerk-pass")
	suite.Require().NoError(err)
	staffRepo := repositories.NewStaffRepository(db, logger)
	_, err = staffRepo.Create(ctx, entities.Staff{
		FullName:     "Devon Park",
		Email:        "devon.park@rental.example",
		PasswordHash: hash,
		Role:         constants.RoleClerk,
		BranchCode:   null.StringFrom("DT"),
	})
	suite.Require().NoError(err)

	equipmentRepo := repositories.NewEquipmentRepository(db, logger)
	equipID, err := equipmentRepo.Create(ctx, entities.Equipment{
		Name: "Mirrorless Body", Brand: "Sony", Model: "A7 IV",
		DailyRate: 95, Deposit: 600,
		Status: constants.EquipmentStatusActive, CategoryCode: null.StringFrom("CAM"),
	})
	suite.Require().NoError(err)
	suite.EquipID = equipID

	suite.Require().NoError(equipmentRepo.CreateCopy(ctx, entities.EquipmentCopy{
		EquipID:      equipID,
		CopyNo:       1,
		EquipCode:    "MIRR-0001",
		BranchCode:   "DT",
		Condition:    null.StringFrom("Good"),
		PurchaseDate: null.StringFrom("2023-01-05"),
		SerialNumber: "SNA74-10332",
	}))
}

func (suite *WebRouterTestSuite) TearDownSuite() {
	suite.DB.Close()
}

func (suite *WebRouterTestSuite) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	suite.Echo.ServeHTTP(rec, req)
	return rec
}

func (suite *WebRouterTestSuite) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	suite.Echo.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == constants.SessionCookieName && c.Value != "" {
			return c
		}
	}
	return nil
}

func (suite *WebRouterTestSuite) TestPublicPages() {
	assert.Equal(suite.T(), http.StatusOK, suite.get("/", nil).Code)
	assert.Equal(suite.T(), http.StatusOK, suite.get("/signup", nil).Code)
	assert.Equal(suite.T(), http.StatusOK, suite.get("/login/customer", nil).Code)
	assert.Equal(suite.T(), http.StatusOK, suite.get("/login/employee", nil).Code)
	assert.Equal(suite.T(), http.StatusOK, suite.get("/available", nil).Code)
}

func (suite *WebRouterTestSuite) TestGuardsRedirectAnonymousVisitors() {
	rec := suite.get("/customer", nil)
	assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	assert.Equal(suite.T(), "/login/customer", rec.Header().Get(echo.HeaderLocation))

	rec = suite.get("/employee", nil)
	assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	assert.Equal(suite.T(), "/login/employee", rec.Header().Get(echo.HeaderLocation))

	rec = suite.get("/reservations", nil)
	assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	assert.Equal(suite.T(), "/login/customer", rec.Header().Get(echo.HeaderLocation))
}

func (suite *WebRouterTestSuite) TestCustomerJourney() {
	var cookie *http.Cookie

	suite.Run("1_Signup", func() {
		rec := suite.postForm("/signup", url.Values{
			"name":     {"Ann Chu"},
			"email":    {"ann@example.com"},
			"password": {"customer-pass"},
			"phone":    {"555-0101"},
		}, nil)
		assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
		assert.Equal(suite.T(), "/login/customer", rec.Header().Get(echo.HeaderLocation))
	})

	suite.Run("2_DuplicateEmailBouncesBack", func() {
		rec := suite.postForm("/signup", url.Values{
			"name":     {"Another Ann"},
			"email":    {"ann@example.com"},
			"password": {"other-pass"},
		}, nil)
		assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
		assert.Equal(suite.T(), "/signup", rec.Header().Get(echo.HeaderLocation))

		// the flash lands on the next rendered page
		page := suite.get("/signup", sessionCookie(rec))
		assert.Contains(suite.T(), page.Body.String(), "Email already exists!")
	})

	suite.Run("3_Login", func() {
		rec := suite.postForm("/login/customer", url.Values{
			"email":    {"ann@example.com"},
			"password": {"customer-pass"},
		}, nil)
		assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
		assert.Equal(suite.T(), "/customer", rec.Header().Get(echo.HeaderLocation))

		cookie = sessionCookie(rec)
		suite.Require().NotNil(cookie, "login must set the session cookie")

		dashboard := suite.get("/customer", cookie)
		assert.Equal(suite.T(), http.StatusOK, dashboard.Code)
		assert.Contains(suite.T(), dashboard.Body.String(), "Welcome, Ann Chu")
	})

	suite.Run("4_CustomerCannotReachEmployeeArea", func() {
		rec := suite.get("/employee", cookie)
		assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
		assert.Equal(suite.T(), "/login/employee", rec.Header().Get(echo.HeaderLocation))
	})

	suite.Run("5_RequestReservation", func() {
		assert.Equal(suite.T(), http.StatusOK, suite.get("/reservations", cookie).Code)

		rec := suite.postForm("/reservations", url.Values{
			"equip_id": {strconv.FormatUint(suite.EquipID, 10)},
			"start":    {"2025-09-01"},
			"end":      {"2025-09-05"},
		}, cookie)
		assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
		assert.Equal(suite.T(), "/reservations", rec.Header().Get(echo.HeaderLocation))

		page := suite.get("/reservations", cookie)
		assert.Contains(suite.T(), page.Body.String(), "Reservation requested!")
	})

	suite.Run("6_Logout", func() {
		rec := suite.get("/logout", cookie)
		assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
		assert.Equal(suite.T(), "/", rec.Header().Get(echo.HeaderLocation))

		// the session rotates in place: exactly one cookie, carrying the flash
		var sessionCookies []*http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == constants.SessionCookieName {
				sessionCookies = append(sessionCookies, c)
			}
		}
		suite.Require().Len(sessionCookies, 1)

		home := suite.get("/", sessionCookies[0])
		assert.Contains(suite.T(), home.Body.String(), "Logged out.")

		rec = suite.get("/customer", cookie)
		assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	})
}

func (suite *WebRouterTestSuite) TestEmployeeJourney() {
	rec := suite.postForm("/login/employee", url.Values{
		"email":    {"devon.park@rental.example"},
		"password": {"wrong-pass"},
	}, nil)
	assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	assert.Equal(suite.T(), "/login/employee", rec.Header().Get(echo.HeaderLocation))

	rec = suite.postForm("/login/employee", url.Values{
		"email":    {"devon.park@rental.example"},
		"password": {"clerk-pass"},
	}, nil)
	assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	assert.Equal(suite.T(), "/employee", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(rec)
	suite.Require().NotNil(cookie)

	dashboard := suite.get("/employee", cookie)
	assert.Equal(suite.T(), http.StatusOK, dashboard.Code)
	assert.Contains(suite.T(), dashboard.Body.String(), "Welcome, Devon Park")

	listing := suite.get("/employee/available", cookie)
	assert.Equal(suite.T(), http.StatusOK, listing.Code)
	assert.Contains(suite.T(), listing.Body.String(), "Mirrorless Body")

	// the customer area stays closed to staff
	rec = suite.get("/reservations", cookie)
	assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	assert.Equal(suite.T(), "/login/customer", rec.Header().Get(echo.HeaderLocation))
}

func TestWebRouterSuite(t *testing.T) {
	suite.Run(t, new(WebRouterTestSuite))
}
