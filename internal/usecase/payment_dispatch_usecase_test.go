package usecase

import (
	"context"
	"errors"
	"testing"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/infrastructure/gateways"
	mock_interfaces "paydispatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentDispatchUseCase_Dispatch_Validations(t *testing.T) {
	t.Run("empty gateway", func(t *testing.T) {
		uc := NewPaymentDispatchUseCase(nil, nil)
		_, err := uc.Dispatch(context.Background(), "  ", 10, "1234567890123456")
		if !errors.Is(err, ErrInvalidGateway) {
			t.Fatalf("expected ErrInvalidGateway, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		uc := NewPaymentDispatchUseCase(nil, nil)
		_, err := uc.Dispatch(context.Background(), "stripe", -0.01, "1234567890123456")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("empty card number", func(t *testing.T) {
		uc := NewPaymentDispatchUseCase(nil, nil)
		_, err := uc.Dispatch(context.Background(), "stripe", 10, " ")
		if !errors.Is(err, ErrInvalidCardNumber) {
			t.Fatalf("expected ErrInvalidCardNumber, got %v", err)
		}
	})

	t.Run("factory not configured", func(t *testing.T) {
		uc := NewPaymentDispatchUseCase(nil, nil)
		_, err := uc.Dispatch(context.Background(), "stripe", 10, "1234567890123456")
		if err == nil || err.Error() != "gateway factory not configured" {
			t.Fatalf("expected factory not configured error, got %v", err)
		}
	})
}

func TestPaymentDispatchUseCase_Dispatch(t *testing.T) {
	t.Run("unsupported gateway propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		factory := mock_interfaces.NewMockIGatewayFactory(ctrl)
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentDispatchUseCase(factory, repo)

		factory.EXPECT().Create(entities.GatewaySelector("cybercash")).Return(nil, gateways.ErrUnsupportedGateway)

		_, err := uc.Dispatch(context.Background(), "cybercash", 10, "1234567890123456")
		if !errors.Is(err, gateways.ErrUnsupportedGateway) {
			t.Fatalf("expected ErrUnsupportedGateway, got %v", err)
		}
	})

	t.Run("processing error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		factory := mock_interfaces.NewMockIGatewayFactory(ctrl)
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentDispatchUseCase(factory, repo)

		factory.EXPECT().Create(entities.GatewayStripe).Return(gw, nil)
		gw.EXPECT().ProcessPayment(gomock.Any(), entities.PaymentRequest{Amount: 10, CardNumber: "4242424242424242"}).Return(entities.PaymentOutcome{}, errors.New("provider down"))

		_, err := uc.Dispatch(context.Background(), "stripe", 10, "4242424242424242")
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down error, got %v", err)
		}
	})

	t.Run("approved outcome persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		factory := mock_interfaces.NewMockIGatewayFactory(ctrl)
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentDispatchUseCase(factory, repo)

		factory.EXPECT().Create(entities.GatewayStripe).Return(gw, nil)
		gw.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.PaymentOutcome{Status: entities.PaymentStatusApproved, Reference: "STRP-ABC"}, nil)
		gw.EXPECT().Name().Return(entities.GatewayStripe)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) { return tr, nil },
		)

		created, err := uc.Dispatch(context.Background(), "stripe", 99.90, "4242424242424242")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated transaction id")
		}
		if created.Status != entities.PaymentStatusApproved || created.Reference != "STRP-ABC" {
			t.Fatalf("unexpected transaction: %+v", created)
		}
		if created.CardLast4 != "4242" {
			t.Fatalf("expected last4 4242, got %q", created.CardLast4)
		}
		if created.Gateway != entities.GatewayStripe {
			t.Fatalf("unexpected gateway: %s", created.Gateway)
		}
	})

	t.Run("rejected outcome persisted without reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		factory := mock_interfaces.NewMockIGatewayFactory(ctrl)
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentDispatchUseCase(factory, repo)

		factory.EXPECT().Create(entities.GatewayMercadoPago).Return(gw, nil)
		gw.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.PaymentOutcome{Status: entities.PaymentStatusRejected, Reason: "card rejected"}, nil)
		gw.EXPECT().Name().Return(entities.GatewayMercadoPago)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) { return tr, nil },
		)

		created, err := uc.Dispatch(context.Background(), "mercadopago", 200, "1234567890123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.PaymentStatusRejected || created.Reference != "" {
			t.Fatalf("unexpected transaction: %+v", created)
		}
		if created.Reason != "card rejected" {
			t.Fatalf("expected reason, got %+v", created)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		factory := mock_interfaces.NewMockIGatewayFactory(ctrl)
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentDispatchUseCase(factory, repo)

		factory.EXPECT().Create(entities.GatewayPagSeguro).Return(gw, nil)
		gw.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.PaymentOutcome{Status: entities.PaymentStatusApproved, Reference: "PAGS-1"}, nil)
		gw.EXPECT().Name().Return(entities.GatewayPagSeguro)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("db"))

		_, err := uc.Dispatch(context.Background(), "pagseguro", 150, "1234567890123456")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPaymentDispatchUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPaymentDispatchUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentDispatchUseCase(nil, repo)

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{}, nil)

		_, err := uc.GetByID(context.Background(), "tx-1")
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentDispatchUseCase(nil, repo)

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{ID: "tx-1"}, nil)

		got, err := uc.GetByID(context.Background(), "tx-1")
		if err != nil || got.ID != "tx-1" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}

func TestPaymentDispatchUseCase_ListByGateway(t *testing.T) {
	t.Run("invalid gateway", func(t *testing.T) {
		uc := NewPaymentDispatchUseCase(nil, nil)
		_, err := uc.ListByGateway(context.Background(), "")
		if !errors.Is(err, ErrInvalidGateway) {
			t.Fatalf("expected ErrInvalidGateway, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentDispatchUseCase(nil, repo)

		repo.EXPECT().ListByGateway(gomock.Any(), entities.GatewayStripe).Return([]entities.Transaction{{ID: "tx-1"}}, nil)

		got, err := uc.ListByGateway(context.Background(), "stripe")
		if err != nil || len(got) != 1 || got[0].ID != "tx-1" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}
