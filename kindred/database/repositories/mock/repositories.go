package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/kindredchat/kindred/kindred/database/models"
	repositories "github.com/kindredchat/kindred/kindred/database/repositories"
	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"
)

// MockRelationRepository is a mock of RelationRepository interface.
type MockRelationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRelationRepositoryMockRecorder
	isgomock struct{}
}

// MockRelationRepositoryMockRecorder is the mock recorder for MockRelationRepository.
type MockRelationRepositoryMockRecorder struct {
	mock *MockRelationRepository
}

// NewMockRelationRepository creates a new mock instance.
func NewMockRelationRepository(ctrl *gomock.Controller) *MockRelationRepository {
	mock := &MockRelationRepository{ctrl: ctrl}
	mock.recorder = &MockRelationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRelationRepository) EXPECT() *MockRelationRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRelationRepository) Create(ctx context.Context, relation *models.Relation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, relation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockRelationRepositoryMockRecorder) Create(ctx, relation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRelationRepository)(nil).Create), ctx, relation)
}

// Delete mocks base method.
func (m *MockRelationRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRelationRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRelationRepository)(nil).Delete), ctx, id)
}

// GetByID mocks base method.
func (m *MockRelationRepository) GetByID(ctx context.Context, id int64) (*models.Relation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Relation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRelationRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRelationRepository)(nil).GetByID), ctx, id)
}

// GetByUserAndCharacter mocks base method.
func (m *MockRelationRepository) GetByUserAndCharacter(ctx context.Context, userID, characterID string) (*models.Relation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserAndCharacter", ctx, userID, characterID)
	ret0, _ := ret[0].(*models.Relation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserAndCharacter indicates an expected call of GetByUserAndCharacter.
func (mr *MockRelationRepositoryMockRecorder) GetByUserAndCharacter(ctx, userID, characterID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserAndCharacter", reflect.TypeOf((*MockRelationRepository)(nil).GetByUserAndCharacter), ctx, userID, characterID)
}

// GetForUpdateTx mocks base method.
func (m *MockRelationRepository) GetForUpdateTx(ctx context.Context, tx bun.Tx, id int64) (*models.Relation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdateTx", ctx, tx, id)
	ret0, _ := ret[0].(*models.Relation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdateTx indicates an expected call of GetForUpdateTx.
func (mr *MockRelationRepositoryMockRecorder) GetForUpdateTx(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdateTx", reflect.TypeOf((*MockRelationRepository)(nil).GetForUpdateTx), ctx, tx, id)
}

// GetOrCreate mocks base method.
func (m *MockRelationRepository) GetOrCreate(ctx context.Context, userID, characterID string) (*models.Relation, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrCreate", ctx, userID, characterID)
	ret0, _ := ret[0].(*models.Relation)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetOrCreate indicates an expected call of GetOrCreate.
func (mr *MockRelationRepositoryMockRecorder) GetOrCreate(ctx, userID, characterID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrCreate", reflect.TypeOf((*MockRelationRepository)(nil).GetOrCreate), ctx, userID, characterID)
}

// Transaction mocks base method.
func (m *MockRelationRepository) Transaction(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transaction", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Transaction indicates an expected call of Transaction.
func (mr *MockRelationRepositoryMockRecorder) Transaction(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transaction", reflect.TypeOf((*MockRelationRepository)(nil).Transaction), ctx, fn)
}

// Update mocks base method.
func (m *MockRelationRepository) Update(ctx context.Context, relation *models.Relation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, relation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRelationRepositoryMockRecorder) Update(ctx, relation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRelationRepository)(nil).Update), ctx, relation)
}

// UpdateTx mocks base method.
func (m *MockRelationRepository) UpdateTx(ctx context.Context, tx bun.Tx, relation *models.Relation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTx", ctx, tx, relation)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateTx indicates an expected call of UpdateTx.
func (mr *MockRelationRepositoryMockRecorder) UpdateTx(ctx, tx, relation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTx", reflect.TypeOf((*MockRelationRepository)(nil).UpdateTx), ctx, tx, relation)
}

// MockEventLogRepository is a mock of EventLogRepository interface.
type MockEventLogRepository struct {
	ctrl     *gomock.Controller
	recorder *MockEventLogRepositoryMockRecorder
	isgomock struct{}
}

// MockEventLogRepositoryMockRecorder is the mock recorder for MockEventLogRepository.
type MockEventLogRepositoryMockRecorder struct {
	mock *MockEventLogRepository
}

// NewMockEventLogRepository creates a new mock instance.
func NewMockEventLogRepository(ctrl *gomock.Controller) *MockEventLogRepository {
	mock := &MockEventLogRepository{ctrl: ctrl}
	mock.recorder = &MockEventLogRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventLogRepository) EXPECT() *MockEventLogRepositoryMockRecorder {
	return m.recorder
}

// CountPositiveByCategory mocks base method.
func (m *MockEventLogRepository) CountPositiveByCategory(ctx context.Context, relationID int64, category string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountPositiveByCategory", ctx, relationID, category)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountPositiveByCategory indicates an expected call of CountPositiveByCategory.
func (mr *MockEventLogRepositoryMockRecorder) CountPositiveByCategory(ctx, relationID, category any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountPositiveByCategory", reflect.TypeOf((*MockEventLogRepository)(nil).CountPositiveByCategory), ctx, relationID, category)
}

// CountSigned mocks base method.
func (m *MockEventLogRepository) CountSigned(ctx context.Context, relationID int64) (int, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountSigned", ctx, relationID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CountSigned indicates an expected call of CountSigned.
func (mr *MockEventLogRepositoryMockRecorder) CountSigned(ctx, relationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountSigned", reflect.TypeOf((*MockEventLogRepository)(nil).CountSigned), ctx, relationID)
}

// Create mocks base method.
func (m *MockEventLogRepository) Create(ctx context.Context, entry *models.EventLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockEventLogRepositoryMockRecorder) Create(ctx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockEventLogRepository)(nil).Create), ctx, entry)
}

// CreateTx mocks base method.
func (m *MockEventLogRepository) CreateTx(ctx context.Context, tx bun.Tx, entry *models.EventLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTx", ctx, tx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateTx indicates an expected call of CreateTx.
func (mr *MockEventLogRepositoryMockRecorder) CreateTx(ctx, tx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTx", reflect.TypeOf((*MockEventLogRepository)(nil).CreateTx), ctx, tx, entry)
}

// ListRecent mocks base method.
func (m *MockEventLogRepository) ListRecent(ctx context.Context, relationID int64, limit, offset int) ([]*models.EventLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecent", ctx, relationID, limit, offset)
	ret0, _ := ret[0].([]*models.EventLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecent indicates an expected call of ListRecent.
func (mr *MockEventLogRepositoryMockRecorder) ListRecent(ctx, relationID, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecent", reflect.TypeOf((*MockEventLogRepository)(nil).ListRecent), ctx, relationID, limit, offset)
}

// ListRecentDeltas mocks base method.
func (m *MockEventLogRepository) ListRecentDeltas(ctx context.Context, relationID int64, limit int) ([]int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecentDeltas", ctx, relationID, limit)
	ret0, _ := ret[0].([]int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecentDeltas indicates an expected call of ListRecentDeltas.
func (mr *MockEventLogRepositoryMockRecorder) ListRecentDeltas(ctx, relationID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecentDeltas", reflect.TypeOf((*MockEventLogRepository)(nil).ListRecentDeltas), ctx, relationID, limit)
}

// MockMemoryRepository is a mock of MemoryRepository interface.
type MockMemoryRepository struct {
	ctrl     *gomock.Controller
	recorder *MockMemoryRepositoryMockRecorder
	isgomock struct{}
}

// MockMemoryRepositoryMockRecorder is the mock recorder for MockMemoryRepository.
type MockMemoryRepositoryMockRecorder struct {
	mock *MockMemoryRepository
}

// NewMockMemoryRepository creates a new mock instance.
func NewMockMemoryRepository(ctrl *gomock.Controller) *MockMemoryRepository {
	mock := &MockMemoryRepository{ctrl: ctrl}
	mock.recorder = &MockMemoryRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMemoryRepository) EXPECT() *MockMemoryRepositoryMockRecorder {
	return m.recorder
}

// CountHighlights mocks base method.
func (m *MockMemoryRepository) CountHighlights(ctx context.Context, relationID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountHighlights", ctx, relationID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountHighlights indicates an expected call of CountHighlights.
func (mr *MockMemoryRepositoryMockRecorder) CountHighlights(ctx, relationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountHighlights", reflect.TypeOf((*MockMemoryRepository)(nil).CountHighlights), ctx, relationID)
}

// Create mocks base method.
func (m *MockMemoryRepository) Create(ctx context.Context, memory *models.Memory) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, memory)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockMemoryRepositoryMockRecorder) Create(ctx, memory any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockMemoryRepository)(nil).Create), ctx, memory)
}

// GetByID mocks base method.
func (m *MockMemoryRepository) GetByID(ctx context.Context, id int64) (*models.Memory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Memory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockMemoryRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockMemoryRepository)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockMemoryRepository) List(ctx context.Context, relationID int64, filter repositories.MemoryFilter) ([]*models.Memory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, relationID, filter)
	ret0, _ := ret[0].([]*models.Memory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockMemoryRepositoryMockRecorder) List(ctx, relationID, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockMemoryRepository)(nil).List), ctx, relationID, filter)
}

// MockAchievementRepository is a mock of AchievementRepository interface.
type MockAchievementRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAchievementRepositoryMockRecorder
	isgomock struct{}
}

// MockAchievementRepositoryMockRecorder is the mock recorder for MockAchievementRepository.
type MockAchievementRepositoryMockRecorder struct {
	mock *MockAchievementRepository
}

// NewMockAchievementRepository creates a new mock instance.
func NewMockAchievementRepository(ctrl *gomock.Controller) *MockAchievementRepository {
	mock := &MockAchievementRepository{ctrl: ctrl}
	mock.recorder = &MockAchievementRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAchievementRepository) EXPECT() *MockAchievementRepositoryMockRecorder {
	return m.recorder
}

// GetByRelationAndID mocks base method.
func (m *MockAchievementRepository) GetByRelationAndID(ctx context.Context, relationID int64, achievementID string) (*models.Achievement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByRelationAndID", ctx, relationID, achievementID)
	ret0, _ := ret[0].(*models.Achievement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByRelationAndID indicates an expected call of GetByRelationAndID.
func (mr *MockAchievementRepositoryMockRecorder) GetByRelationAndID(ctx, relationID, achievementID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByRelationAndID", reflect.TypeOf((*MockAchievementRepository)(nil).GetByRelationAndID), ctx, relationID, achievementID)
}

// Insert mocks base method.
func (m *MockAchievementRepository) Insert(ctx context.Context, achievement *models.Achievement) (*models.Achievement, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, achievement)
	ret0, _ := ret[0].(*models.Achievement)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Insert indicates an expected call of Insert.
func (mr *MockAchievementRepositoryMockRecorder) Insert(ctx, achievement any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockAchievementRepository)(nil).Insert), ctx, achievement)
}

// ListByRelation mocks base method.
func (m *MockAchievementRepository) ListByRelation(ctx context.Context, relationID int64) ([]*models.Achievement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByRelation", ctx, relationID)
	ret0, _ := ret[0].([]*models.Achievement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByRelation indicates an expected call of ListByRelation.
func (mr *MockAchievementRepositoryMockRecorder) ListByRelation(ctx, relationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByRelation", reflect.TypeOf((*MockAchievementRepository)(nil).ListByRelation), ctx, relationID)
}
