package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Product sort orders
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortTitle     = "title"
)

var productSorts = map[string]string{
	SortNewest:    "created_at DESC",
	SortPriceAsc:  utils.FinalPriceSQL + " ASC",
	SortPriceDesc: utils.FinalPriceSQL + " DESC",
	SortTitle:     "LOWER(title) ASC",
}

// productOrder builds the ORDER BY for sort. Price sorts use the discounted price at now.
func productOrder(sort string, now time.Time) clause.OrderBy {
	expr := clause.Expr{SQL: productSorts[sort] + ", id DESC", WithoutParentheses: true}
	if sort == SortPriceAsc || sort == SortPriceDesc {
		expr.Vars = []interface{}{now, now}
	}
	return clause.OrderBy{Expression: expr}
}

// ProductFilter is the parsed catalog query
type ProductFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Active   *bool
}

// ProductResponse is a product with its current price
type ProductResponse struct {
	models.Product
	FinalPrice     float64 `json:"final_price"`
	DiscountAmount float64 `json:"discount_amount"`
	InStock        bool    `json:"in_stock"`
}

func newProductResponse(p models.Product, now time.Time) ProductResponse {
	price := utils.CalculatePrice(&p, now)
	return ProductResponse{
		Product:        p,
		FinalPrice:     price.FinalPrice,
		DiscountAmount: price.DiscountAmount,
		InStock:        p.Stock > 0,
	}
}

// parseProductFilter reads and validates the catalog query string
func parseProductFilter(c *gin.Context) (ProductFilter, error) {
	f := ProductFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Sort:   c.DefaultQuery("sort", SortNewest),
	}

	if raw := c.Query("category"); raw != "" {
		category, ok := models.NormalizeCategory(raw)
		if !ok {
			return f, errors.New("unknown category")
		}
		f.Category = category
	}

	for _, bound := range []struct {
		key string
		dst **float64
	}{{"min_price", &f.MinPrice}, {"max_price", &f.MaxPrice}} {
		raw := c.Query(bound.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return f, errors.New(bound.key + " must be a non-negative number")
		}
		*bound.dst = &v
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return f, errors.New("min_price cannot exceed max_price")
	}

	if _, ok := productSorts[f.Sort]; !ok {
		return f, errors.New("sort must be one of newest, price_asc, price_desc, title")
	}

	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return f, errors.New("active must be true or false")
		}
		f.Active = &active
	}
	return f, nil
}

// apply adds the filter to a product query. Storefront queries only see
// active, in-stock products.
func (f ProductFilter) apply(db *gorm.DB, storefront bool, now time.Time) *gorm.DB {
	if storefront {
		db = db.Where("is_active = ? AND stock > 0", true)
	} else if f.Active != nil {
		db = db.Where("is_active = ?", *f.Active)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?", like, like, like)
	}
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		db = db.Where(utils.FinalPriceSQL+" >= ?", now, now, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where(utils.FinalPriceSQL+" <= ?", now, now, *f.MaxPrice)
	}
	return db
}

// ListProducts serves the storefront catalog
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")
	listProducts(c, true)
}

// AdminListProducts lists every product including inactive ones
func AdminListProducts(c *gin.Context) {
	utils.LogInfo("AdminListProducts called")
	listProducts(c, false)
}

func listProducts(c *gin.Context, storefront bool) {
	filter, err := parseProductFilter(c)
	if err != nil {
		utils.LogError("Invalid product query: %v", err)
		utils.BadRequest(c, "Invalid query parameters", err.Error())
		return
	}
	pagination := utils.NewPagination(c)

	now := time.Now()
	query := filter.apply(config.DB.Model(&models.Product{}), storefront, now)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, "Failed to fetch products", err)
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := pagination.Scope(query.Clauses(productOrder(filter.Sort, now))).Find(&products).Error; err != nil {
		utils.RespondError(c, "Failed to fetch products", err)
		return
	}

	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, newProductResponse(p, now))
	}

	utils.LogInfo("Retrieved %d of %d products", len(items), total)
	utils.SuccessWithPagination(c, "Products retrieved successfully", items, pagination)
}

// GetProduct returns an active product for the storefront
func GetProduct(c *gin.Context) {
	utils.LogInfo("GetProduct called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	product, err := utils.GetAvailableProduct(id)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidItem) {
			err = gorm.ErrRecordNotFound
		}
		utils.RespondError(c, "Product", err)
		return
	}
	utils.Success(c, "Product retrieved successfully", newProductResponse(*product, time.Now()))
}

// AdminGetProduct returns any product
func AdminGetProduct(c *gin.Context) {
	utils.LogInfo("AdminGetProduct called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	product, err := utils.GetProductByID(id)
	if err != nil {
		utils.RespondError(c, "Product", err)
		return
	}
	utils.Success(c, "Product retrieved successfully", newProductResponse(*product, time.Now()))
}
