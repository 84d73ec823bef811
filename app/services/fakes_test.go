package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories. The tx arguments are
// ignored; fakeTransactor hands the callbacks a nil tx.

type fakeTransactor struct{}

func (fakeTransactor) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*models.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySku(ctx context.Context, sku string) (*models.Product, error) {
	for _, p := range r.products {
		if p.Sku == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) FindSlugs(ctx context.Context, base string) ([]string, error) {
	var out []string
	for _, p := range r.products {
		if p.Slug == base || (len(p.Slug) > len(base) && p.Slug[:len(base)+1] == base+"-") {
			out = append(out, p.Slug)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) UpdateStockMirror(ctx context.Context, tx *gorm.DB, id string, stock int) error {
	if p, ok := r.products[id]; ok {
		p.StockQuantity = stock
	}
	return nil
}

type fakeVariantRepo struct {
	variants map[string]*models.ProductVariant
}

func newFakeVariantRepo(variants ...*models.ProductVariant) *fakeVariantRepo {
	r := &fakeVariantRepo{variants: map[string]*models.ProductVariant{}}
	for _, v := range variants {
		r.variants[v.ID] = v
	}
	return r
}

func (r *fakeVariantRepo) Create(ctx context.Context, variant *models.ProductVariant) error {
	r.variants[variant.ID] = variant
	return nil
}

func (r *fakeVariantRepo) GetByID(ctx context.Context, id string) (*models.ProductVariant, error) {
	return r.variants[id], nil
}

func (r *fakeVariantRepo) GetByProductID(ctx context.Context, productID string) ([]models.ProductVariant, error) {
	var out []models.ProductVariant
	for _, v := range r.variants {
		if v.ProductID == productID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVariantRepo) UpdateStockMirror(ctx context.Context, tx *gorm.DB, id string, stock int) error {
	if v, ok := r.variants[id]; ok {
		v.StockQuantity = stock
	}
	return nil
}

func invKey(productID string, variantID *string) string {
	if variantID == nil {
		return productID
	}
	return productID + "|" + *variantID
}

type fakeInventoryRepo struct {
	rows map[string]*models.Inventory
}

func newFakeInventoryRepo(rows ...*models.Inventory) *fakeInventoryRepo {
	r := &fakeInventoryRepo{rows: map[string]*models.Inventory{}}
	for _, row := range rows {
		r.rows[invKey(row.ProductID, row.VariantID)] = row
	}
	return r
}

func (r *fakeInventoryRepo) GetByKey(ctx context.Context, productID string, variantID *string) (*models.Inventory, error) {
	return r.rows[invKey(productID, variantID)], nil
}

func (r *fakeInventoryRepo) ApplyDelta(ctx context.Context, tx *gorm.DB, productID string, variantID *string, delta int) (*models.Inventory, error) {
	now := time.Now()
	key := invKey(productID, variantID)

	inv, ok := r.rows[key]
	if !ok {
		stock := delta
		if stock < 0 {
			stock = 0
		}
		inv = &models.Inventory{
			ID:            uuid.New().String(),
			ProductID:     productID,
			VariantID:     variantID,
			StockQuantity: stock,
		}
		if delta > 0 {
			inv.LastRestockedAt = &now
		}
		r.rows[key] = inv
		return inv, nil
	}

	inv.StockQuantity += delta
	if inv.StockQuantity < 0 {
		inv.StockQuantity = 0
	}
	if delta > 0 {
		inv.LastRestockedAt = &now
	}
	return inv, nil
}

func (r *fakeInventoryRepo) UpdateFields(ctx context.Context, tx *gorm.DB, productID string, variantID *string, fields map[string]interface{}) error {
	inv, ok := r.rows[invKey(productID, variantID)]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["stock_quantity"]; ok {
		inv.StockQuantity = v.(int)
	}
	if v, ok := fields["reserved_quantity"]; ok {
		inv.ReservedQuantity = v.(int)
	}
	if v, ok := fields["threshold"]; ok {
		inv.Threshold = v.(int)
	}
	return nil
}

func (r *fakeInventoryRepo) GetLowStock(ctx context.Context) ([]models.Inventory, error) {
	var out []models.Inventory
	for _, inv := range r.rows {
		if inv.StockQuantity <= inv.Threshold {
			out = append(out, *inv)
		}
	}
	return out, nil
}

type fakeInventoryLogRepo struct {
	entries []models.InventoryLog
}

func (r *fakeInventoryLogRepo) Create(ctx context.Context, tx *gorm.DB, entry *models.InventoryLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeInventoryLogRepo) ListByProduct(ctx context.Context, productID string, variantID *string, limit, offset int) ([]models.InventoryLog, int64, error) {
	var out []models.InventoryLog
	for _, e := range r.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

type fakeNotifier struct {
	alerts []string
}

func (n *fakeNotifier) NotifyLowStock(ctx context.Context, inv *models.Inventory, productName string) {
	n.alerts = append(n.alerts, productName)
}

type fakeCouponRepo struct {
	coupons map[string]*models.Coupon
	usages  []models.CouponUsage
}

func newFakeCouponRepo(coupons ...*models.Coupon) *fakeCouponRepo {
	r := &fakeCouponRepo{coupons: map[string]*models.Coupon{}}
	for _, c := range coupons {
		r.coupons[c.ID] = c
	}
	return r
}

func (r *fakeCouponRepo) Create(ctx context.Context, coupon *models.Coupon) error {
	r.coupons[coupon.ID] = coupon
	return nil
}

func (r *fakeCouponRepo) GetByID(ctx context.Context, id string) (*models.Coupon, error) {
	return r.coupons[id], nil
}

func (r *fakeCouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	for _, c := range r.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCouponRepo) GetAll(ctx context.Context) ([]models.Coupon, error) {
	var out []models.Coupon
	for _, c := range r.coupons {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCouponRepo) Update(ctx context.Context, coupon *models.Coupon) error {
	r.coupons[coupon.ID] = coupon
	return nil
}

func (r *fakeCouponRepo) Delete(ctx context.Context, id string) error {
	delete(r.coupons, id)
	return nil
}

func (r *fakeCouponRepo) CountUsagesByUser(ctx context.Context, couponID, userID string) (int64, error) {
	var n int64
	for _, u := range r.usages {
		if u.CouponID == couponID && u.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCouponRepo) GetUsageByOrder(ctx context.Context, tx *gorm.DB, couponID, orderID string) (*models.CouponUsage, error) {
	for i := range r.usages {
		if r.usages[i].CouponID == couponID && r.usages[i].OrderID == orderID {
			return &r.usages[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCouponRepo) CreateUsage(ctx context.Context, tx *gorm.DB, usage *models.CouponUsage) error {
	for _, u := range r.usages {
		if u.CouponID == usage.CouponID && u.OrderID == usage.OrderID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.usages = append(r.usages, *usage)
	return nil
}

func (r *fakeCouponRepo) IncrementUsage(ctx context.Context, tx *gorm.DB, couponID string, usageLimit int) (bool, error) {
	c, ok := r.coupons[couponID]
	if !ok {
		return false, nil
	}
	if usageLimit > 0 && c.UsageCount >= usageLimit {
		return false, nil
	}
	c.UsageCount++
	return true, nil
}

type fakeCartRepo struct {
	carts map[string]*models.Cart
	items *fakeCartItemRepo
}

func newFakeCartRepo(items *fakeCartItemRepo) *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*models.Cart{}, items: items}
}

func (r *fakeCartRepo) GetOrCreateCartByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	for _, c := range r.carts {
		if c.UserID == userID {
			return c, nil
		}
	}
	cart := &models.Cart{ID: uuid.New().String(), UserID: userID}
	r.carts[cart.ID] = cart
	return cart, nil
}

func (r *fakeCartRepo) GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, ok := r.carts[cartID]
	if !ok {
		return nil, nil
	}
	loaded := *cart
	loaded.CartItems, _ = r.items.GetByCartID(ctx, cartID)
	return &loaded, nil
}

func (r *fakeCartRepo) UpdateCartSummary(ctx context.Context, cartID string) error {
	cart, ok := r.carts[cartID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	items, _ := r.items.GetByCartID(ctx, cartID)

	var baseTotal, taxTotal, grandTotal decimal.Decimal
	for _, item := range items {
		baseTotal = baseTotal.Add(item.BaseTotal)
		taxTotal = taxTotal.Add(item.TaxAmount)
		grandTotal = grandTotal.Add(item.GrandTotal)
	}
	grandTotal = grandTotal.Sub(cart.DiscountAmount)
	if grandTotal.IsNegative() {
		grandTotal = decimal.Zero
	}

	cart.BaseTotalPrice = baseTotal
	cart.TaxAmount = taxTotal
	if len(items) > 0 {
		cart.TaxPercent = items[0].TaxPercent
	}
	cart.GrandTotal = grandTotal
	return nil
}

func (r *fakeCartRepo) UpdateCoupon(ctx context.Context, cartID, code string, discount decimal.Decimal) error {
	cart, ok := r.carts[cartID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cart.CouponCode = code
	cart.DiscountAmount = discount
	return nil
}

func (r *fakeCartRepo) GetCartItemCount(ctx context.Context, cartID string) (int, error) {
	items, _ := r.items.GetByCartID(ctx, cartID)
	return len(items), nil
}

func (r *fakeCartRepo) DeleteCart(ctx context.Context, cartID string) error {
	delete(r.carts, cartID)
	return nil
}

func cartItemKey(cartID, productID string, variantID *string) string {
	key := cartID + "|" + productID
	if variantID != nil {
		key += "|" + *variantID
	}
	return key
}

type fakeCartItemRepo struct {
	items map[string]*models.CartItem
}

func newFakeCartItemRepo() *fakeCartItemRepo {
	return &fakeCartItemRepo{items: map[string]*models.CartItem{}}
}

func (r *fakeCartItemRepo) Add(ctx context.Context, item *models.CartItem) error {
	copied := *item
	r.items[cartItemKey(item.CartID, item.ProductID, item.VariantID)] = &copied
	return nil
}

func (r *fakeCartItemRepo) Update(ctx context.Context, item *models.CartItem) error {
	return r.Add(ctx, item)
}

func (r *fakeCartItemRepo) Delete(ctx context.Context, cartID, productID string, variantID *string) error {
	delete(r.items, cartItemKey(cartID, productID, variantID))
	return nil
}

func (r *fakeCartItemRepo) GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range r.items {
		if item.CartID == cartID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeCartItemRepo) GetByKey(ctx context.Context, cartID, productID string, variantID *string) (*models.CartItem, error) {
	if item, ok := r.items[cartItemKey(cartID, productID, variantID)]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeCartItemRepo) ClearCartItems(ctx context.Context, tx *gorm.DB, cartID string) error {
	for key, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, key)
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*models.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) FindByCode(ctx context.Context, orderCode string) (*models.Order, error) {
	for _, o := range r.orders {
		if o.OrderCode == orderCode {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdatePaymentStatusAndOrderStatus(ctx context.Context, db *gorm.DB, orderID, paymentStatus string, orderStatus int) error {
	o, ok := r.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.PaymentStatus = paymentStatus
	o.Status = orderStatus
	return nil
}

func (r *fakeOrderRepo) UpdatePaymentDetails(ctx context.Context, tx *gorm.DB, orderID, token, redirectURL string) error {
	o, ok := r.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.PaymentToken = token
	o.PaymentURL = redirectURL
	return nil
}

type fakeOrderItemRepo struct {
	items []models.OrderItem
}

func (r *fakeOrderItemRepo) BulkCreate(ctx context.Context, tx *gorm.DB, items []models.OrderItem) error {
	r.items = append(r.items, items...)
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*models.Payment{}}
}

func (r *fakePaymentRepo) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, paymentID, status string) error {
	p, ok := r.payments[paymentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	return nil
}

type fakeGateway struct {
	calls int
	err   error
}

func (g *fakeGateway) CreateIntent(order *models.Order, user *models.User) (*PaymentIntent, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &PaymentIntent{
		Token:       "tok-" + order.OrderCode,
		RedirectURL: "https://pay.example/redirect/" + order.OrderCode,
	}, nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
}

func newFakeCategoryRepo(categories ...*models.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: map[string]*models.Category{}}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindSlugs(ctx context.Context, base string) ([]string, error) {
	var out []string
	for _, c := range r.categories {
		if c.Slug == base || (len(c.Slug) > len(base) && c.Slug[:len(base)+1] == base+"-") {
			out = append(out, c.Slug)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

type fakeBrandRepo struct {
	brands map[string]*models.Brand
}

func newFakeBrandRepo(brands ...*models.Brand) *fakeBrandRepo {
	r := &fakeBrandRepo{brands: map[string]*models.Brand{}}
	for _, b := range brands {
		r.brands[b.ID] = b
	}
	return r
}

func (r *fakeBrandRepo) Create(ctx context.Context, brand *models.Brand) error {
	r.brands[brand.ID] = brand
	return nil
}

func (r *fakeBrandRepo) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	return r.brands[id], nil
}

func (r *fakeBrandRepo) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	for _, b := range r.brands {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBrandRepo) GetAll(ctx context.Context) ([]models.Brand, error) {
	var out []models.Brand
	for _, b := range r.brands {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBrandRepo) FindSlugs(ctx context.Context, base string) ([]string, error) {
	var out []string
	for _, b := range r.brands {
		if b.Slug == base || (len(b.Slug) > len(base) && b.Slug[:len(base)+1] == base+"-") {
			out = append(out, b.Slug)
		}
	}
	return out, nil
}

func (r *fakeBrandRepo) Update(ctx context.Context, brand *models.Brand) error {
	r.brands[brand.ID] = brand
	return nil
}

func (r *fakeBrandRepo) Delete(ctx context.Context, id string) error {
	delete(r.brands, id)
	return nil
}
