package shop_controller

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/catalog_filter"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// shopQuery holds the validated query parameters. cats, brands and brand are
// read again by catalog_filter.ParseURLState.
type shopQuery struct {
	Search  string   `form:"q" binding:"max=120"`
	Sort    string   `form:"sort" binding:"max=20"`
	Cats    string   `form:"cats" binding:"max=2000"`
	Brands  string   `form:"brands" binding:"max=2000"`
	Brand   string   `form:"brand" binding:"max=120"`
	Options []string `form:"opt" binding:"max=50,dive,optpairs"`
	Page    int      `form:"page" binding:"omitempty,min=1"`
	Limit   int      `form:"limit" binding:"omitempty,min=1,max=100"`
}

var validatorsOnce sync.Once

func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := strings.Split(f.Tag.Get("form"), ",")[0]; name != "" && name != "-" {
				return name
			}
			return f.Name
		})
		_ = v.RegisterValidation("optpairs", validateOptionPairs)
	})
}

// validateOptionPairs accepts "<groupID>:<valueID>" pairs, comma separated.
func validateOptionPairs(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}
	for _, pair := range strings.Split(raw, ",") {
		groupPart, valuePart, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return false
		}
		if _, err := uuid.Parse(groupPart); err != nil {
			return false
		}
		if _, err := uuid.Parse(valuePart); err != nil {
			return false
		}
	}
	return true
}

// bindShopQuery validates the query and returns the filter state it encodes.
// On failure it returns per-field messages.
func bindShopQuery(c *gin.Context) (shopQuery, catalog_filter.FilterState, map[string]string) {
	var q shopQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, catalog_filter.FilterState{}, formatValidationErrors(err)
	}

	state := catalog_filter.ParseURLState(c.Request.URL.Query())
	state.Selection = catalog_filter.ParseSelection(q.Options)
	return q, state, nil
}

func formatValidationErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"query": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if i := strings.Index(name, "["); i > 0 {
			name = name[:i]
		}
		switch fe.Tag() {
		case "max":
			if fe.Kind() == reflect.Slice {
				fields[name] = "at most " + fe.Param() + " values allowed"
			} else if fe.Kind() == reflect.String {
				fields[name] = "must be at most " + fe.Param() + " characters"
			} else {
				fields[name] = "must be at most " + fe.Param()
			}
		case "min":
			fields[name] = "must be at least " + fe.Param()
		case "optpairs":
			fields[name] = "must be <groupID>:<valueID> pairs"
		default:
			fields[name] = "is invalid"
		}
	}
	return fields
}

// pageWindow returns the [start, end) slice bounds for page/limit. A zero
// limit means the whole list.
func pageWindow(total, page, limit int) (start, end int) {
	if limit <= 0 {
		return 0, total
	}
	if page < 1 {
		page = 1
	}
	start = (page - 1) * limit
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	return start, end
}
