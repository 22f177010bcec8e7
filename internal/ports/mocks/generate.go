//go:generate mockgen -source=../sender.go           -destination=./mock_sender.go           -package=mocks
//go:generate mockgen -source=../snapshot_cache.go   -destination=./mock_snapshot_cache.go   -package=mocks
//go:generate mockgen -source=../print_journal.go    -destination=./mock_print_journal.go    -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks
//go:generate mockgen -source=../receipt_printer.go  -destination=./mock_receipt_printer.go  -package=mocks

package mocks
