package sales

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/products"
)

var tracer = otel.Tracer("api_drugstore/internal/sales")

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Dependencies are the collaborators a Service is built from.
type Dependencies struct {
	Storage   Storage
	Customers CustomerFinder
	Sellers   SellerFinder
	Products  ProductCatalog
	Tx        Transactor
}

// Service runs the checkout workflow and the sale read paths.
type Service struct {
	storage     Storage
	customers   CustomerFinder
	sellers     SellerFinder
	products    ProductCatalog
	tx          Transactor
	logger      *zap.Logger
	strictStock bool
}

type Option func(*Service)

// WithStrictStock rejects sales that would take a product's stock below
// zero. Without it stock may go negative.
func WithStrictStock(strict bool) Option {
	return func(s *Service) { s.strictStock = strict }
}

func NewService(deps Dependencies, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		storage:   deps.Storage,
		customers: deps.Customers,
		sellers:   deps.Sellers,
		products:  deps.Products,
		tx:        deps.Tx,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddSale validates req and then, in one transaction, resolves the
// customer, seller and products, prices the order, stores the sale with its
// line items and decrements stock. Any failure leaves no trace.
func (s *Service) AddSale(ctx context.Context, req AddSaleRequest) (*SaleDTO, error) {
	ctx, span := tracer.Start(ctx, "sales.AddSale", trace.WithAttributes(
		attribute.Int64("sale.customer_id", req.CustomerID),
		attribute.Int64("sale.seller_id", req.SellerID),
		attribute.Int("sale.items", len(req.SaleProducts)),
	))
	defer span.End()

	if err := ValidateAddSale(req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("sale rejected", zap.Error(err))
		return nil, err
	}

	var out SaleDTO
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		res, err := s.resolve(ctx, req)
		if err != nil {
			return err
		}

		sale := &Sale{
			PaymentMethod:  req.PaymentMethod,
			PaymentStatus:  StatusPending,
			ShippingStatus: StatusPending,
			Total:          CalculateTotal(req.SaleProducts, res.products),
			CustomerID:     res.customer.ID,
			SellerID:       res.seller.ID,
		}
		if err := s.storage.CreateSale(ctx, sale); err != nil {
			return err
		}

		items := make([]SaleProduct, 0, len(req.SaleProducts))
		for _, item := range req.SaleProducts {
			items = append(items, SaleProduct{SaleID: sale.ID, ProductID: *item.ProductID, Quantity: item.Quantity})
		}
		if err := s.storage.CreateSaleProducts(ctx, items); err != nil {
			return err
		}

		if err := s.adjustStock(ctx, items, res.products); err != nil {
			return err
		}

		lines := make([]LineItem, 0, len(items))
		for _, it := range items {
			lines = append(lines, LineItem{
				ID:          it.ID,
				SaleID:      sale.ID,
				ProductID:   it.ProductID,
				ProductName: res.products[it.ProductID].Name,
				Quantity:    it.Quantity,
			})
		}
		out = toDTO(*sale, lines)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("failed to add sale",
			zap.Int64("customer_id", req.CustomerID),
			zap.Int64("seller_id", req.SellerID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("add sale: %w", err)
	}

	span.SetAttributes(attribute.Int64("sale.id", out.ID), attribute.String("sale.total", out.Total.String()))
	s.logger.Info("sale created",
		zap.Int64("sale_id", out.ID),
		zap.Int64("customer_id", out.CustomerID),
		zap.String("total", out.Total.StringFixed(2)),
	)
	return &out, nil
}

// adjustStock subtracts each item's quantity from its product's stock. Each
// subtraction is a single UPDATE, so sales committing concurrently never
// overwrite each other's decrements. It must run after the line items are
// stored.
func (s *Service) adjustStock(ctx context.Context, items []SaleProduct, catalog map[int64]products.Product) error {
	ctx, span := tracer.Start(ctx, "sales.adjustStock")
	defer span.End()

	for _, item := range items {
		left, err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return err
		}
		if left >= 0 {
			continue
		}
		if s.strictStock {
			return apperrors.Conflict(fmt.Sprintf("Insufficient stock for product %s.", catalog[item.ProductID].Name))
		}
		s.logger.Warn("stock below zero",
			zap.Int64("product_id", item.ProductID),
			zap.Int("quantity", left),
		)
	}
	return nil
}

// FindAllSalesForCustomer returns the customer's sales in creation order,
// each with its line items. A customer with no sales yields an empty slice.
func (s *Service) FindAllSalesForCustomer(ctx context.Context, customerID int64) ([]SaleDTO, error) {
	ctx, span := tracer.Start(ctx, "sales.FindAllSalesForCustomer",
		trace.WithAttributes(attribute.Int64("sale.customer_id", customerID)))
	defer span.End()

	list, err := s.storage.FindSalesByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(list))
	for _, sale := range list {
		ids = append(ids, sale.ID)
	}
	lines, err := s.storage.FindLineItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	bySale := make(map[int64][]LineItem, len(list))
	for _, l := range lines {
		bySale[l.SaleID] = append(bySale[l.SaleID], l)
	}

	out := make([]SaleDTO, 0, len(list))
	for _, sale := range list {
		out = append(out, toDTO(sale, bySale[sale.ID]))
	}
	return out, nil
}

func (s *Service) FindSaleByID(ctx context.Context, id int64) (*SaleDTO, error) {
	sale, err := s.storage.FindSaleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := s.storage.FindLineItems(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	dto := toDTO(*sale, lines)
	return &dto, nil
}
