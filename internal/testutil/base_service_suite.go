package testutil

import (
	"context"
	"time"

	"github.com/smsdesk/smsdesk/internal/auth"
	"github.com/smsdesk/smsdesk/internal/config"
	"github.com/smsdesk/smsdesk/internal/domain/group"
	"github.com/smsdesk/smsdesk/internal/domain/user"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/phone"
	"github.com/smsdesk/smsdesk/internal/rbac"
	"github.com/smsdesk/smsdesk/internal/types"
	"github.com/smsdesk/smsdesk/internal/validator"
	"github.com/stretchr/testify/suite"
)

// TestPassword is the plain password of every seeded user
const TestPassword = "secret-password"

// Stores holds all the in-memory repositories for testing
type Stores struct {
	UserRepo         *InMemoryUserStore
	GroupRepo        *InMemoryGroupStore
	ContactRepo      *InMemoryContactStore
	ScheduledSMSRepo *InMemoryScheduledSMSStore
}

// BaseServiceTestSuite provides common functionality for all service test suites.
// Every test starts with an admin, a regular user and one group per user.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     *MockPostgresClient
	logger *logger.Logger
	config *config.Configuration
	rbac   *rbac.RBACService
	phone  *phone.Normalizer
	auth   auth.Provider
	now    time.Time
	hash   string

	admin      *user.User
	user       *user.User
	adminGroup *group.Group
	userGroup  *group.Group
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo
	cfg.Auth.Secret = "test-secret-for-unit-tests-only"
	cfg.Contacts.SampleFilePath = "../../assets/files/sample-contacts.csv"
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	s.rbac, err = rbac.NewRBACService(cfg)
	if err != nil {
		s.T().Fatalf("failed to load roles: %v", err)
	}

	s.phone = phone.NewNormalizer(cfg)
	s.auth = auth.NewProvider(cfg)

	s.hash, err = s.auth.HashPassword(TestPassword)
	if err != nil {
		s.T().Fatalf("failed to hash password: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.now = time.Now().UTC()
	s.setupStores()
	s.seed()
	s.ctx = SetupContext(s.UserCaller())
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	users := NewInMemoryUserStore()
	s.stores = Stores{
		UserRepo:         users,
		GroupRepo:        NewInMemoryGroupStore(),
		ContactRepo:      NewInMemoryContactStore(users),
		ScheduledSMSRepo: NewInMemoryScheduledSMSStore(),
	}
	s.db = NewMockPostgresClient(s.logger)
}

func (s *BaseServiceTestSuite) seed() {
	s.admin = user.NewUser("Ada Admin", "admin@example.com", types.UserRoleAdmin, s.hash)
	s.user = user.NewUser("Uma User", "user@example.com", types.UserRoleUser, s.hash)
	s.Require().NoError(s.stores.UserRepo.Create(context.Background(), s.admin))
	s.Require().NoError(s.stores.UserRepo.Create(context.Background(), s.user))

	s.adminGroup = s.CreateGroup("Board", s.admin.ID)
	s.userGroup = s.CreateGroup("Friends", s.user.ID)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.UserRepo.Clear()
	s.stores.GroupRepo.Clear()
	s.stores.ContactRepo.Clear()
	s.stores.ScheduledSMSRepo.Clear()
}

// CreateGroup stores a new group owned by userID
func (s *BaseServiceTestSuite) CreateGroup(name, userID string) *group.Group {
	g := &group.Group{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_GROUP),
		Name:      name,
		UserID:    userID,
		BaseModel: types.GetDefaultBaseModel(),
	}
	s.Require().NoError(s.stores.GroupRepo.Create(context.Background(), g))
	return g
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() *MockPostgresClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetRBAC() *rbac.RBACService {
	return s.rbac
}

func (s *BaseServiceTestSuite) GetPhone() *phone.Normalizer {
	return s.phone
}

func (s *BaseServiceTestSuite) GetAuth() auth.Provider {
	return s.auth
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

func (s *BaseServiceTestSuite) Admin() *user.User {
	return s.admin
}

func (s *BaseServiceTestSuite) User() *user.User {
	return s.user
}

func (s *BaseServiceTestSuite) AdminGroup() *group.Group {
	return s.adminGroup
}

func (s *BaseServiceTestSuite) UserGroup() *group.Group {
	return s.userGroup
}

func (s *BaseServiceTestSuite) AdminCaller() types.Caller {
	return types.Caller{UserID: s.admin.ID, Roles: s.admin.Roles()}
}

func (s *BaseServiceTestSuite) UserCaller() types.Caller {
	return types.Caller{UserID: s.user.ID, Roles: s.user.Roles()}
}
