// Package testtypes provides fixture types shared by typename's tests.
package testtypes

type Example struct{}

type Box[T any] struct {
	Value T
}

type Pair[K comparable, V any] struct {
	Key K
	Val V
}

type Greeter interface {
	Greet() string
}

type OrderCreated struct{}

type UserSignedUp struct{}

type HTTPRequest struct{}

type ID struct{}
