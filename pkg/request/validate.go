package request

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/go-playground/validator/v10"
)

// ValidationError lists the fields of a request that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", strings.Join(e.Fields, ", "))
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// The kobe types are generated, so their rules live here instead of in struct tags.
		validate.RegisterStructValidationMapRules(map[string]string{
			"Inventory": "required",
			"Pattern":   "required",
			"Module":    "required",
		}, kobe.RunAdhocRequest{})
		validate.RegisterStructValidationMapRules(map[string]string{
			"Inventory": "required",
			"Project":   "required",
			"Playbook":  "required",
		}, kobe.RunPlaybookRequest{})
		validate.RegisterStructValidationMapRules(map[string]string{
			"Hosts":  "dive,required",
			"Groups": "dive,required",
		}, kobe.Inventory{})
		validate.RegisterStructValidationMapRules(map[string]string{
			"Ip":   "required",
			"Port": "min=1,max=65535",
		}, kobe.Host{})
		validate.RegisterStructValidationMapRules(map[string]string{
			"Name": "required",
		}, kobe.Group{})
		validate.RegisterStructValidation(inventoryStructLevel, kobe.Inventory{})
	})
	return validate
}

func inventoryStructLevel(sl validator.StructLevel) {
	inv := sl.Current()
	hosts := inv.FieldByName("Hosts")
	if hosts.Len() == 0 && inv.FieldByName("Groups").Len() == 0 {
		sl.ReportError(hosts.Interface(), "Hosts", "hosts", "hosts_or_groups", "")
	}
}

// Validate checks a *kobe.RunAdhocRequest or *kobe.RunPlaybookRequest before
// it is sent. The inventory must name at least one host or group.
func Validate(req any) error {
	switch r := req.(type) {
	case *kobe.RunAdhocRequest:
		if r == nil {
			return &ValidationError{Fields: []string{"request"}}
		}
	case *kobe.RunPlaybookRequest:
		if r == nil {
			return &ValidationError{Fields: []string{"request"}}
		}
	default:
		return fmt.Errorf("cannot validate %T", req)
	}

	err := validatorInstance().Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return &ValidationError{Fields: fields}
}
