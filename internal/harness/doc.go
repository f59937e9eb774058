// Package harness runs conformance scenarios against the search engine.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: numeric_fields
//	description: "Numeric comparisons and the unknown-value marker"
//	cards: ../../testutil/testdata/cards.json
//	sets: ../../testutil/testdata/sets.json
//	cases:
//	  - query: "atk>=2000"
//	    describe: "ATK >= 2000"
//	    expect: [46986414, 26593852, 1861629]
//	  - query: "atk<=>1"
//	    error: parse
//
// Corpus paths are resolved relative to the scenario file. A case either
// expects a list of ids in corpus order (an omitted list means no matches)
// or an error kind: "parse" or "compile". The optional describe field is
// compared against the query restatement.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/numeric.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
