package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LiveFeedFetcher --dir ../usecase --output usecase --outpkg usecasemock --filename livefeed_fetcher_mock.go
