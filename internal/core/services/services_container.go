package services

import (
	"github.com/SscSPs/crypto_wallet_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/crypto_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The PriceStore is shared with the PriceFeedPoller that keeps it fresh.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	store *PriceStore,
	settlement gateways.SettlementClient,
	publisher gateways.EventPublisher,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Price = NewPriceService(store, repos.PriceTableRepo)
	container.Conversion = NewConversionService(store)
	container.Wallet = NewWalletService(repos.WalletRepo)

	container.Closure = NewClosureService(
		repos.WalletRepo,
		store,
		settlement,
		WithClosureEventPublisher(publisher),
	)
	container.Order = NewOrderService(settlement, WithOrderEventPublisher(publisher))

	return container
}
