package evaluation

import (
	"context"
	"errors"
	"runtime"

	"github.com/Knetic/govaluate"
	"github.com/infra-recipes/gobuilder/api"
	"github.com/rs/zerolog/log"
)

// Service evaluates when clauses guarding conditional build steps
//go:generate mockgen -package=evaluation -destination ./mock.go -source=service.go
type Service interface {
	Evaluate(string, string, map[string]interface{}) (bool, error)
	GetParameters(triggerContext api.TriggerContext, buildPlan api.BuildPlan) map[string]interface{}
}

// NewService returns a new evaluation.Service
func NewService(ctx context.Context) (Service, error) {
	return &service{}, nil
}

type service struct {
}

func (s *service) Evaluate(stepName, input string, parameters map[string]interface{}) (result bool, err error) {

	if input == "" {
		return false, errors.New("When expression is empty")
	}

	log.Debug().Msgf("[%v] Evaluating when expression \"%v\" with parameters \"%v\"", stepName, input, parameters)

	expression, err := govaluate.NewEvaluableExpression(input)
	if err != nil {
		return
	}

	r, err := expression.Evaluate(parameters)

	log.Debug().Msgf("[%v] Result of when expression \"%v\" is \"%v\"", stepName, input, r)

	if result, ok := r.(bool); ok {
		return result, err
	}

	return false, errors.New("Result of evaluating when expression is not of type boolean")
}

func (s *service) GetParameters(triggerContext api.TriggerContext, buildPlan api.BuildPlan) map[string]interface{} {

	parameters := make(map[string]interface{}, 5)
	parameters["category"] = triggerContext.Category
	parameters["refspec"] = buildPlan.Refspec
	parameters["goos"] = buildPlan.GOOS
	parameters["goarch"] = buildPlan.GOARCH
	parameters["hostGoos"] = runtime.GOOS

	return parameters
}
