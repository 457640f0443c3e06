package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"comfort/config"
	"comfort/infras/otel/mocks"
	contactMocks "comfort/internal/domains/contact/mocks"
	"comfort/internal/domains/contact/model"
	"comfort/internal/domains/contact/model/dto"
	"comfort/internal/domains/contact/service"
	"comfort/shared/constant"
	gDto "comfort/shared/dto"
	"comfort/shared/failure"
)

const testContactID = "7f9c24e5-2f86-4a5d-9c11-0a4b7a3f8a10"

func TestContactService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateContactRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation normalizes fields",
			req: dto.CreateContactRequest{
				Name:    "  Jane Guest  ",
				Email:   " Jane@Example.COM ",
				Message: " Hello ",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, contact model.Contact) error {
						assert.Equal(t, "Jane Guest", contact.Name)
						assert.Equal(t, "jane@example.com", contact.Email)
						assert.Equal(t, "Hello", contact.Message)
						assert.Equal(t, "staff", contact.CreatedBy)
						assert.NotEmpty(t, contact.ID)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "store error is masked",
			req: dto.CreateContactRequest{
				Name:    "Jane Guest",
				Email:   "jane@example.com",
				Message: "Hello",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "staff")
			id, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, failure.StoreUnavailableError, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestContactService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   error
	}{
		{
			name: "found",
			id:   testContactID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Contact{ID: testContactID, Name: "Jane"}, nil)
			},
		},
		{
			name:      "malformed id fails before touching the store",
			id:        "not-a-uuid",
			setupMock: func() {},
			wantErr:   failure.InvalidIDError,
		},
		{
			name: "missing record",
			id:   testContactID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Contact{}, nil)
			},
			wantErr: failure.NotFound("contact not found"),
		},
		{
			name: "store error",
			id:   testContactID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Contact{}, errors.New("connection refused"))
			},
			wantErr: failure.StoreUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testContactID, res.ID)
			}
		})
	}
}

func TestContactService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	params := gDto.ListParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Contact{{ID: testContactID, Name: "Jane"}}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Jane", res[0].Name)
}

func TestContactService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	req := dto.UpdateContactRequest{
		Name:    "Jane Guest",
		Email:   " Jane@Example.com ",
		Message: "Updated message",
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful update re-fetches the record",
			id:   testContactID,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "jane@example.com", fields[model.FieldEmail])
						assert.Equal(t, "staff", fields[constant.FieldUpdatedBy])

						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Contact{ID: testContactID, Name: "Jane Guest", Email: "jane@example.com"}, nil)
			},
		},
		{
			name:      "malformed id",
			id:        "123",
			setupMock: func() {},
			wantErr:   failure.InvalidIDError,
		},
		{
			name: "missing record",
			id:   testContactID,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: failure.NotFound("contact not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "staff")
			res, err := svc.Update(ctx, req, tt.id)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "jane@example.com", res.Email)
			}
		})
	}
}

func TestContactService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful delete",
			id:   testContactID,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "malformed id",
			id:        "",
			setupMock: func() {},
			wantErr:   failure.InvalidIDError,
		},
		{
			name: "missing record",
			id:   testContactID,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: failure.NotFound("contact not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
