package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/pydis/site-api/siteapi/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockKeyLookup is a mock of KeyLookup interface.
type MockKeyLookup struct {
	ctrl     *gomock.Controller
	recorder *MockKeyLookupMockRecorder
	isgomock struct{}
}

// MockKeyLookupMockRecorder is the mock recorder for MockKeyLookup.
type MockKeyLookupMockRecorder struct {
	mock *MockKeyLookup
}

// NewMockKeyLookup creates a new mock instance.
func NewMockKeyLookup(ctrl *gomock.Controller) *MockKeyLookup {
	mock := &MockKeyLookup{ctrl: ctrl}
	mock.recorder = &MockKeyLookupMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockKeyLookup) EXPECT() *MockKeyLookupMockRecorder {
	return m.recorder
}

// Exists mocks base method.
func (m *MockKeyLookup) Exists(ctx context.Context, id int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exists indicates an expected call of Exists.
func (mr *MockKeyLookupMockRecorder) Exists(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockKeyLookup)(nil).Exists), ctx, id)
}

// MockUserGateway is a mock of UserGateway interface.
type MockUserGateway struct {
	ctrl     *gomock.Controller
	recorder *MockUserGatewayMockRecorder
	isgomock struct{}
}

// MockUserGatewayMockRecorder is the mock recorder for MockUserGateway.
type MockUserGatewayMockRecorder struct {
	mock *MockUserGateway
}

// NewMockUserGateway creates a new mock instance.
func NewMockUserGateway(ctrl *gomock.Controller) *MockUserGateway {
	mock := &MockUserGateway{ctrl: ctrl}
	mock.recorder = &MockUserGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserGateway) EXPECT() *MockUserGatewayMockRecorder {
	return m.recorder
}

// Exists mocks base method.
func (m *MockUserGateway) Exists(ctx context.Context, id int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exists indicates an expected call of Exists.
func (mr *MockUserGatewayMockRecorder) Exists(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockUserGateway)(nil).Exists), ctx, id)
}

// Get mocks base method.
func (m *MockUserGateway) Get(ctx context.Context, id int64) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockUserGatewayMockRecorder) Get(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockUserGateway)(nil).Get), ctx, id)
}

// MockWriter is a mock of Writer interface.
type MockWriter[M any] struct {
	ctrl     *gomock.Controller
	recorder *MockWriterMockRecorder[M]
	isgomock struct{}
}

// MockWriterMockRecorder is the mock recorder for MockWriter.
type MockWriterMockRecorder[M any] struct {
	mock *MockWriter[M]
}

// NewMockWriter creates a new mock instance.
func NewMockWriter[M any](ctrl *gomock.Controller) *MockWriter[M] {
	mock := &MockWriter[M]{ctrl: ctrl}
	mock.recorder = &MockWriterMockRecorder[M]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWriter[M]) EXPECT() *MockWriterMockRecorder[M] {
	return m.recorder
}

// Create mocks base method.
func (m *MockWriter[M]) Create(ctx context.Context, arg1 *M) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockWriterMockRecorder[M]) Create(ctx, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockWriter[M])(nil).Create), ctx, arg1)
}

// MockUserWriter is a mock of UserWriter interface.
type MockUserWriter struct {
	ctrl     *gomock.Controller
	recorder *MockUserWriterMockRecorder
	isgomock struct{}
}

// MockUserWriterMockRecorder is the mock recorder for MockUserWriter.
type MockUserWriterMockRecorder struct {
	mock *MockUserWriter
}

// NewMockUserWriter creates a new mock instance.
func NewMockUserWriter(ctrl *gomock.Controller) *MockUserWriter {
	mock := &MockUserWriter{ctrl: ctrl}
	mock.recorder = &MockUserWriterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserWriter) EXPECT() *MockUserWriterMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockUserWriter) Create(ctx context.Context, user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockUserWriterMockRecorder) Create(ctx, user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserWriter)(nil).Create), ctx, user)
}

// CreateMany mocks base method.
func (m *MockUserWriter) CreateMany(ctx context.Context, users []*models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateMany", ctx, users)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateMany indicates an expected call of CreateMany.
func (mr *MockUserWriterMockRecorder) CreateMany(ctx, users any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateMany", reflect.TypeOf((*MockUserWriter)(nil).CreateMany), ctx, users)
}

// MockDeletionContextWriter is a mock of DeletionContextWriter interface.
type MockDeletionContextWriter struct {
	ctrl     *gomock.Controller
	recorder *MockDeletionContextWriterMockRecorder
	isgomock struct{}
}

// MockDeletionContextWriterMockRecorder is the mock recorder for MockDeletionContextWriter.
type MockDeletionContextWriterMockRecorder struct {
	mock *MockDeletionContextWriter
}

// NewMockDeletionContextWriter creates a new mock instance.
func NewMockDeletionContextWriter(ctrl *gomock.Controller) *MockDeletionContextWriter {
	mock := &MockDeletionContextWriter{ctrl: ctrl}
	mock.recorder = &MockDeletionContextWriterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDeletionContextWriter) EXPECT() *MockDeletionContextWriterMockRecorder {
	return m.recorder
}

// CreateWithMessages mocks base method.
func (m *MockDeletionContextWriter) CreateWithMessages(ctx context.Context, dc *models.MessageDeletionContext, messages []*models.DeletedMessage) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateWithMessages", ctx, dc, messages)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateWithMessages indicates an expected call of CreateWithMessages.
func (mr *MockDeletionContextWriterMockRecorder) CreateWithMessages(ctx, dc, messages any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateWithMessages", reflect.TypeOf((*MockDeletionContextWriter)(nil).CreateWithMessages), ctx, dc, messages)
}
