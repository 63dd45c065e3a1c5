// Package catalog holds the fixed demo tables used in mock mode, embedded so
// the binary stays standalone.
package catalog

import _ "embed"

//go:embed languages.yaml
var languagesYAML []byte

//go:embed stations.yaml
var stationsYAML []byte

//go:embed stocks.yaml
var stocksYAML []byte

//go:embed phrases.yaml
var phrasesYAML []byte

//go:embed movies.yaml
var moviesYAML []byte

//go:embed items.yaml
var itemsYAML []byte
