// Package kobe holds the KobeApi messages and gRPC stubs generated from
// proto/kobe.proto.
package kobe

//go:generate protoc -I ../../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative kobe.proto
