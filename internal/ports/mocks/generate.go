//go:generate mockgen -source=../logger.go              -destination=./mock_logger.go              -package=mocks
//go:generate mockgen -source=../remote_source.go       -destination=./mock_remote_source.go       -package=mocks
//go:generate mockgen -source=../command_source.go      -destination=./mock_command_source.go      -package=mocks
//go:generate mockgen -source=../snapshot_repository.go -destination=./mock_snapshot_repository.go -package=mocks
//go:generate mockgen -source=../message_consumer.go    -destination=./mock_message_consumer.go    -package=mocks
//go:generate mockgen -source=../driver_service.go      -destination=./mock_driver_service.go      -package=mocks

package mocks
