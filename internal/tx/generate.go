package tx

//go:generate mockgen -destination=txmock/remote.go -package=txmock github.com/LeJamon/goswtc/internal/tx Remote,BalancesGetter
