package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/target/ticketdesk-api/internal/domain/auth"
	"github.com/target/ticketdesk-api/internal/domain/model"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
	"github.com/target/ticketdesk-api/internal/mocks"
)

func TestTicketService_Create_UsesCallerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTicketStore(ctrl)
	svc := NewTicketService(TicketServiceOptions{Store: store})

	ctx := context.Background()
	in := model.TicketForCreate{Title: "printer on fire"}
	want := model.Ticket{ID: 0, CreatorID: 42, Title: in.Title}
	store.EXPECT().Create(ctx, uint64(42), in).Return(want, nil)

	got, err := svc.Create(ctx, domainauth.NewCtx(42), in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTicketService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTicketStore(ctrl)
	store.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	svc := NewTicketService(TicketServiceOptions{Store: store})

	_, err := svc.Create(context.Background(), domainauth.NewCtx(1), model.TicketForCreate{Title: "  "})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "title", apperrors.GetField(err))
}

func TestTicketService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTicketStore(ctrl)
	svc := NewTicketService(TicketServiceOptions{Store: store})

	tickets := []model.Ticket{{ID: 0, CreatorID: 1, Title: "a"}, {ID: 2, CreatorID: 3, Title: "c"}}
	store.EXPECT().List(gomock.Any()).Return(tickets, nil)

	got, err := svc.List(context.Background(), domainauth.NewCtx(1))
	require.NoError(t, err)
	assert.Equal(t, tickets, got)
}

func TestTicketService_Delete_NotFoundKeepsCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTicketStore(ctrl)
	svc := NewTicketService(TicketServiceOptions{Store: store})

	store.EXPECT().Delete(gomock.Any(), uint64(9)).Return(model.Ticket{}, apperrors.ResourceNotFound(9))

	_, err := svc.Delete(context.Background(), domainauth.NewCtx(1), 9)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	app := apperrors.As(err)
	require.NotNil(t, app.ID)
	assert.Equal(t, uint64(9), *app.ID)
}

func TestNewTicketService_RequiresStore(t *testing.T) {
	assert.Panics(t, func() { NewTicketService(TicketServiceOptions{}) })
}
