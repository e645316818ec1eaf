package consts

import (
	"fmt"

	"github.com/epireport/incubation-analysis/schema"
)

var publishedEstimates map[string][]schema.PublishedEstimate

func init() {
	publishedEstimates = make(map[string][]schema.PublishedEstimate)

	publishedEstimates["backer2020"] = []schema.PublishedEstimate{
		{Source: "backer2020", Label: "mean", Value: 6.4, Lo: 5.6, Hi: 7.7},
		{Source: "backer2020", Label: "2.5%", Value: 2.1, Lo: 1.1, Hi: 3.0},
		{Source: "backer2020", Label: "97.5%", Value: 11.1, Lo: 9.0, Hi: 13.6},
	}
	publishedEstimates["li2020"] = []schema.PublishedEstimate{
		{Source: "li2020", Label: "mean", Value: 5.2, Lo: 4.1, Hi: 7.0},
		{Source: "li2020", Label: "95%", Value: 12.5, Lo: 9.2, Hi: 18.0},
	}
	publishedEstimates["linton2020"] = []schema.PublishedEstimate{
		{Source: "linton2020", Label: "mean", Value: 5.6, Lo: 5.0, Hi: 6.3},
		{Source: "linton2020", Label: "50%", Value: 5.1, Lo: 4.5, Hi: 5.8},
		{Source: "linton2020", Label: "95%", Value: 10.8, Lo: 9.3, Hi: 12.9},
	}
}

// PublishedSources lists the built-in comparator keys in table order.
var PublishedSources = []string{"backer2020", "li2020", "linton2020"}

// PublishedEstimatesFor returns the built-in estimates for one source key.
func PublishedEstimatesFor(source string) ([]schema.PublishedEstimate, error) {
	rows, ok := publishedEstimates[source]
	if !ok {
		return nil, fmt.Errorf("%s not exist", source)
	}
	return rows, nil
}

// AllPublishedEstimates returns every built-in comparator row in a stable
// order.
func AllPublishedEstimates() []schema.PublishedEstimate {
	var rows []schema.PublishedEstimate
	for _, source := range PublishedSources {
		rows = append(rows, publishedEstimates[source]...)
	}
	return rows
}
