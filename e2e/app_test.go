package e2e

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// E2ETestSuite provides a test suite for end-to-end tests
type E2ETestSuite struct {
	suite.Suite
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	expect  playwright.PlaywrightAssertions
}

// SetupSuite runs once before all tests
func (suite *E2ETestSuite) SetupSuite() {
	pw, err := playwright.Run()
	require.NoError(suite.T(), err, "could not launch playwright")
	suite.pw = pw

	browser, err := pw.Chromium.Launch()
	require.NoError(suite.T(), err, "could not launch chromium")
	suite.browser = browser

	suite.expect = playwright.NewPlaywrightAssertions()
}

// TearDownSuite runs once after all tests
func (suite *E2ETestSuite) TearDownSuite() {
	if suite.browser != nil {
		suite.browser.Close()
	}
	if suite.pw != nil {
		suite.pw.Stop()
	}
}

// SetupTest runs before each test
func (suite *E2ETestSuite) SetupTest() {
	page, err := suite.browser.NewPage()
	require.NoError(suite.T(), err, "could not create page")
	suite.page = page

	_, err = suite.page.Goto(appURL)
	require.NoError(suite.T(), err, "could not navigate to app")
}

// TearDownTest runs after each test
func (suite *E2ETestSuite) TearDownTest() {
	if suite.page != nil {
		suite.page.Close()
	}
}

func (suite *E2ETestSuite) login() {
	// Wait for login form
	err := suite.expect.Locator(suite.page.Locator(".login-form")).ToBeVisible()
	require.NoError(suite.T(), err, "login form not visible")

	// Fill in credentials
	err = suite.page.Locator("input[name=username]").Fill("testuser")
	require.NoError(suite.T(), err, "failed to fill username")

	err = suite.page.Locator("input[name=password]").Fill("testpass123")
	require.NoError(suite.T(), err, "failed to fill password")

	// Submit login
	err = suite.page.Locator(".login-btn").Click()
	require.NoError(suite.T(), err, "failed to click login")

	// Wait for redirect to the trip calendar
	err = suite.expect.Locator(suite.page.Locator(".calendar-screen")).ToBeVisible()
	require.NoError(suite.T(), err, "did not redirect to calendar after login")
}

func (suite *E2ETestSuite) TestCompleteUserFlow() {
	// Login
	suite.login()

	// Book a Trip - navigate via the menu
	err := suite.page.Locator("nav.menu a:text-is('Book Trip')").Click()
	require.NoError(suite.T(), err, "failed to click book trip")

	err = suite.expect.Locator(suite.page.Locator("#book-form")).ToBeVisible()
	require.NoError(suite.T(), err, "booking form not visible")

	err = suite.page.Locator("input[name=destination]").Fill("Goa")
	require.NoError(suite.T(), err, "failed to fill destination")

	_, err = suite.page.Locator("select[name=mode]").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"Flight"},
	})
	require.NoError(suite.T(), err, "failed to select mode")

	err = suite.page.Locator("input[name=days]").Fill("3")
	require.NoError(suite.T(), err, "failed to fill days")

	err = suite.page.Locator("input[name=cost_per_day]").Fill("1000")
	require.NoError(suite.T(), err, "failed to fill cost per day")

	err = suite.page.Locator("input[name=date]").Fill("2026-09-10")
	require.NoError(suite.T(), err, "failed to fill date")

	_, err = suite.page.Locator("select[name=category]").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"Vacation"},
	})
	require.NoError(suite.T(), err, "failed to select category")

	err = suite.page.Locator("input[name=total_budget]").Fill("5000")
	require.NoError(suite.T(), err, "failed to fill budget")

	// Submit
	err = suite.page.Locator("button.book-btn").Click()
	require.NoError(suite.T(), err, "failed to submit booking")

	// Verify booking summary
	err = suite.expect.Locator(suite.page.Locator(".booking-summary")).ToBeVisible()
	require.NoError(suite.T(), err, "booking summary not visible")

	err = suite.expect.Locator(suite.page.Locator(".booking-summary")).ToContainText("₹3,000")
	require.NoError(suite.T(), err, "trip cost mismatch")

	// Verify in Calendar
	_, err = suite.page.Goto(appURL + "/trips")
	require.NoError(suite.T(), err, "failed to open calendar")

	err = suite.expect.Locator(suite.page.Locator(".trip-row")).ToHaveCount(1)
	require.NoError(suite.T(), err, "trip row count mismatch")

	row := suite.page.Locator(".trip-row").First()
	err = suite.expect.Locator(row).ToContainText("Goa")
	require.NoError(suite.T(), err, "destination mismatch")

	// Verify Stats
	_, err = suite.page.Goto(appURL + "/stats")
	require.NoError(suite.T(), err, "failed to open stats")

	err = suite.expect.Locator(suite.page.Locator(".stat-count")).ToHaveText("1")
	require.NoError(suite.T(), err, "trip count mismatch")

	err = suite.expect.Locator(suite.page.Locator(".stat-most-visited")).ToContainText("Goa")
	require.NoError(suite.T(), err, "most visited mismatch")
}

// TestE2ESuite runs the e2e test suite
func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}
