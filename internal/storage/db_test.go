package storage

import (
	"database/sql"
	"testing"
	"time"

	"travel-planner/internal/auth"
	"travel-planner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// DBTestSuite provides a test suite for user and trip operations
type DBTestSuite struct {
	suite.Suite
	db *DB
}

// SetupTest runs before each test
func (suite *DBTestSuite) SetupTest() {
	db, err := NewDB(":memory:")
	require.NoError(suite.T(), err, "failed to create test database")
	suite.db = db
}

// TearDownTest runs after each test
func (suite *DBTestSuite) TearDownTest() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *DBTestSuite) TestRegisterAndGetUser() {
	err := suite.db.RegisterUser("alice", "hash-pw", "hash-answer")
	require.NoError(suite.T(), err)

	user, err := suite.db.GetUserByUsername("alice")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice", user.Username)
	assert.Equal(suite.T(), "hash-pw", user.PasswordHash)
	assert.Equal(suite.T(), "hash-answer", user.SecurityAnswerHash)
}

func (suite *DBTestSuite) TestGetUserNotFound() {
	_, err := suite.db.GetUserByUsername("nobody")
	assert.ErrorIs(suite.T(), err, sql.ErrNoRows)
}

func (suite *DBTestSuite) TestRegisterDuplicateIsIgnored() {
	err := suite.db.RegisterUser("alice", "first-pw", "first-answer")
	require.NoError(suite.T(), err)

	// Second registration must succeed without touching the stored row
	err = suite.db.RegisterUser("alice", "second-pw", "second-answer")
	require.NoError(suite.T(), err)

	user, err := suite.db.GetUserByUsername("alice")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "first-pw", user.PasswordHash, "original password should survive re-registration")
	assert.Equal(suite.T(), "first-answer", user.SecurityAnswerHash)

	count, err := suite.db.UserCount()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, count)
}

func (suite *DBTestSuite) TestUpdatePassword() {
	err := suite.db.RegisterUser("alice", "old-pw", "answer")
	require.NoError(suite.T(), err)

	err = suite.db.UpdatePassword("alice", "new-pw")
	require.NoError(suite.T(), err)

	user, err := suite.db.GetUserByUsername("alice")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new-pw", user.PasswordHash)
	assert.Equal(suite.T(), "answer", user.SecurityAnswerHash, "security answer should be untouched")
}

func (suite *DBTestSuite) TestAddAndGetTrips() {
	trips := []models.Trip{
		{Username: "alice", Destination: "Goa", Mode: "Flight", Cost: 3000, Date: "2026-09-10", Category: "Vacation"},
		{Username: "alice", Destination: "Ooty", Mode: "Bus", Cost: 1500, Date: "2026-08-01", Category: "Family"},
		{Username: "bob", Destination: "Chennai", Mode: "Train", Cost: 300, Date: "2026-08-15", Category: "Business"},
	}

	for _, trip := range trips {
		id, err := suite.db.AddTrip(trip)
		require.NoError(suite.T(), err, "failed to add trip to %s", trip.Destination)
		assert.Positive(suite.T(), id)
	}

	result, err := suite.db.GetTrips("alice")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result, 2, "bob's trip must not leak into alice's list")

	// Insertion order, not date order
	assert.Equal(suite.T(), "Goa", result[0].Destination)
	assert.Equal(suite.T(), "Ooty", result[1].Destination)
	assert.Equal(suite.T(), int64(3000), result[0].Cost)
	assert.Equal(suite.T(), "alice", result[0].Username)
}

func (suite *DBTestSuite) TestGetTripsByDate() {
	dates := []string{"2026-12-01", "2026-01-15", "2026-06-30"}
	for _, d := range dates {
		_, err := suite.db.AddTrip(models.Trip{Username: "alice", Destination: "Goa", Mode: "Flight", Cost: 100, Date: d, Category: "Solo"})
		require.NoError(suite.T(), err)
	}

	result, err := suite.db.GetTripsByDate("alice")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result, 3)

	assert.Equal(suite.T(), "2026-01-15", result[0].Date)
	assert.Equal(suite.T(), "2026-06-30", result[1].Date)
	assert.Equal(suite.T(), "2026-12-01", result[2].Date)
}

func (suite *DBTestSuite) TestDestinationCounts() {
	destinations := []string{"Goa", "Ooty", "Goa", "Munnar"}
	for _, d := range destinations {
		_, err := suite.db.AddTrip(models.Trip{Username: "alice", Destination: d, Mode: "Bus", Cost: 100, Date: "2026-01-01", Category: "Solo"})
		require.NoError(suite.T(), err)
	}

	counts, err := suite.db.DestinationCounts("alice")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), counts, 3)

	assert.Equal(suite.T(), "Goa", counts[0].Destination)
	assert.Equal(suite.T(), 2, counts[0].Count)
}

func (suite *DBTestSuite) TestDestinationCountsTieBreak() {
	// Ooty and Goa both appear once; Ooty was booked first
	for _, d := range []string{"Ooty", "Goa"} {
		_, err := suite.db.AddTrip(models.Trip{Username: "alice", Destination: d, Mode: "Bus", Cost: 100, Date: "2026-01-01", Category: "Solo"})
		require.NoError(suite.T(), err)
	}

	counts, err := suite.db.DestinationCounts("alice")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), counts, 2)
	assert.Equal(suite.T(), "Ooty", counts[0].Destination, "earliest booking wins ties")
}

func (suite *DBTestSuite) TestMigrateIsIdempotent() {
	assert.NoError(suite.T(), suite.db.migrate())
	assert.NoError(suite.T(), suite.db.migrate())
}

// SessionTestSuite provides a test suite for session operations
type SessionTestSuite struct {
	suite.Suite
	db   *DB
	user *models.User
}

// SetupTest runs before each test
func (suite *SessionTestSuite) SetupTest() {
	db, err := NewDB(":memory:")
	require.NoError(suite.T(), err, "failed to create test database")
	suite.db = db

	password, err := auth.HashPassword("testpass")
	require.NoError(suite.T(), err, "failed to hash password")
	answer, err := auth.HashPassword("testanswer")
	require.NoError(suite.T(), err, "failed to hash answer")

	err = suite.db.RegisterUser("testuser", password, answer)
	require.NoError(suite.T(), err, "failed to create test user")

	user, err := suite.db.GetUserByUsername("testuser")
	require.NoError(suite.T(), err)
	suite.user = user
}

// TearDownTest runs after each test
func (suite *SessionTestSuite) TearDownTest() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *SessionTestSuite) TestCreateAndValidateSession() {
	token, err := auth.GenerateSessionToken()
	require.NoError(suite.T(), err)

	expiresAt := time.Now().Add(30 * 24 * time.Hour)
	err = suite.db.CreateSession(token, suite.user.Username, expiresAt)
	require.NoError(suite.T(), err)

	sessionUser, err := suite.db.ValidateSession(token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "testuser", sessionUser.Username)
}

func (suite *SessionTestSuite) TestValidateSessionWithInfo() {
	token, err := auth.GenerateSessionToken()
	require.NoError(suite.T(), err)

	expiresAt := time.Now().Add(30 * 24 * time.Hour)
	err = suite.db.CreateSession(token, suite.user.Username, expiresAt)
	require.NoError(suite.T(), err)

	info, err := suite.db.ValidateSessionWithInfo(token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "testuser", info.User.Username)

	timeSinceActivity := time.Since(info.LastActivity)
	assert.Less(suite.T(), timeSinceActivity, 5*time.Second, "LastActivity should be recent")
}

func (suite *SessionTestSuite) TestRenewSession() {
	token, err := auth.GenerateSessionToken()
	require.NoError(suite.T(), err)

	originalExpiry := time.Now().Add(30 * 24 * time.Hour)
	err = suite.db.CreateSession(token, suite.user.Username, originalExpiry)
	require.NoError(suite.T(), err)

	time.Sleep(10 * time.Millisecond)

	originalInfo, err := suite.db.ValidateSessionWithInfo(token)
	require.NoError(suite.T(), err)

	newExpiry := time.Now().Add(60 * 24 * time.Hour)
	err = suite.db.RenewSession(token, newExpiry)
	require.NoError(suite.T(), err)

	updatedInfo, err := suite.db.ValidateSessionWithInfo(token)
	require.NoError(suite.T(), err)

	assert.True(suite.T(), updatedInfo.LastActivity.After(originalInfo.LastActivity),
		"LastActivity should be updated after renewal")
	assert.True(suite.T(), updatedInfo.ExpiresAt.After(originalInfo.ExpiresAt),
		"ExpiresAt should be extended after renewal")
}

func (suite *SessionTestSuite) TestDeleteSession() {
	token, err := auth.GenerateSessionToken()
	require.NoError(suite.T(), err)

	expiresAt := time.Now().Add(30 * 24 * time.Hour)
	err = suite.db.CreateSession(token, suite.user.Username, expiresAt)
	require.NoError(suite.T(), err)

	_, err = suite.db.ValidateSession(token)
	require.NoError(suite.T(), err, "session should exist before deletion")

	err = suite.db.DeleteSession(token)
	require.NoError(suite.T(), err)

	_, err = suite.db.ValidateSession(token)
	assert.Error(suite.T(), err, "expected error after deleting session")
}

func (suite *SessionTestSuite) TestCleanExpiredSessions() {
	expired, err := auth.GenerateSessionToken()
	require.NoError(suite.T(), err)
	live, err := auth.GenerateSessionToken()
	require.NoError(suite.T(), err)

	err = suite.db.CreateSession(expired, suite.user.Username, time.Now().Add(-time.Hour))
	require.NoError(suite.T(), err)
	err = suite.db.CreateSession(live, suite.user.Username, time.Now().Add(time.Hour))
	require.NoError(suite.T(), err)

	err = suite.db.CleanExpiredSessions()
	require.NoError(suite.T(), err)

	_, err = suite.db.ValidateSession(expired)
	assert.Error(suite.T(), err)
	_, err = suite.db.ValidateSession(live)
	assert.NoError(suite.T(), err)
}

// Test suite runners
func TestDBSuite(t *testing.T) {
	suite.Run(t, new(DBTestSuite))
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
