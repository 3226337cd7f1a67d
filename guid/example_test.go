package guid_test

import (
	"errors"
	"fmt"

	"github.com/exertive/identity/byteorder"
	"github.com/exertive/identity/guid"
)

func ExampleGenerate() {
	key, _ := guid.Generate(guid.NamespaceURL, "http://schema.exertive.io/test", guid.V5)
	fmt.Println(key)
	fmt.Println("version:", key.Version())

	// Output:
	// c367d8f4-4e7d-5e2f-9682-f69afd71d664
	// version: VERSION_5
}

func ExampleGenerate_unsupportedVersion() {
	_, err := guid.Generate(guid.NamespaceURL, "http://schema.exertive.io/test", 4)
	fmt.Println(errors.Is(err, guid.ErrUnsupportedVersion))

	// Output:
	// true
}

func ExampleGenerator_GenerateLocal() {
	g := guid.NewGenerator(guid.WithHostOrder(byteorder.LittleEndian))
	local, _ := g.GenerateLocal(guid.NamespaceURL, "http://schema.exertive.io/test", guid.V5)
	fmt.Printf("%x\n", local)
	fmt.Println(guid.FromLocal(local, byteorder.LittleEndian))

	// Output:
	// f4d867c37d4e2f5e9682f69afd71d664
	// c367d8f4-4e7d-5e2f-9682-f69afd71d664
}
