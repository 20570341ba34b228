//go:generate mockgen -source=../order_repository.go   -destination=./mock_order_repository.go   -package=mocks
//go:generate mockgen -source=../summary_cache.go      -destination=./mock_summary_cache.go      -package=mocks
//go:generate mockgen -source=../session_verifier.go   -destination=./mock_session_verifier.go   -package=mocks
//go:generate mockgen -source=../order_validator.go    -destination=./mock_order_validator.go    -package=mocks
//go:generate mockgen -source=../order_read_service.go -destination=./mock_order_read_service.go -package=mocks

package mocks
