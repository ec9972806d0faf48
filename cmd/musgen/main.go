package main

import (
	"os"
	"reflect"
	"strings"

	"github.com/AlthosKal/ComunnityData/core"
	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/AlthosKal/ComunnityData/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.Category]())
	g.AddDefinedType(reflect.TypeFor[core.Urgency]())
	g.AddDefinedType(reflect.TypeFor[core.Zone]())
	g.AddDefinedType(reflect.TypeFor[core.Status]())

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.Report](),
		structops.WithField(),     // Id
		structops.WithField(),     // Age
		structops.WithField(),     // City
		structops.WithField(),     // Comment
		structops.WithField(),     // OriginalComment
		structops.WithField(),     // Category
		structops.WithField(),     // OriginalCategory
		structops.WithField(),     // Urgency
		structops.WithField(opts), // ReportDate
		structops.WithField(),     // GovernmentAttention
		structops.WithField(),     // Zone
		structops.WithField(),     // BiasDetected
		structops.WithField(),     // BiasDescription
		structops.WithField(),     // Embedding
		structops.WithField(),     // Status
		structops.WithField(),     // BatchId
		structops.WithField(),     // BatchIndex
		structops.WithField(),     // ErrorMessage
		structops.WithField(opts), // ImportedAt
		structops.WithField(opts)) // UpdatedAt
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/reports_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
