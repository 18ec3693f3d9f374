// Package validator provides custom validation functions shared by Gin's
// binding engine and transaction entry validation.
package validator

import (
	"reflect"
	"strings"

	"expensetracker/internal/catalog"
	"expensetracker/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = RegisterRules(v)
	}
}

// New returns a standalone validator with the custom rules registered and
// field names reported by their json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = RegisterRules(v)
	return v
}

// RegisterRules adds the custom tags to v:
//
//	txn_kind           Income or Expense
//	category_for_kind  category allowed for the sibling Kind field
func RegisterRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"txn_kind":          validateTransactionKind,
		"category_for_kind": validateCategoryForKind,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.TransactionKind(fl.Field().String()).Valid()
}

// validateCategoryForKind reads the Kind field of the enclosing struct.
func validateCategoryForKind(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}
	kind := parent.FieldByName("Kind")
	if !kind.IsValid() || kind.Kind() != reflect.String {
		return false
	}
	return catalog.Allows(models.TransactionKind(kind.String()), fl.Field().String())
}
