package core_test

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"txquery/internal/core"
	"txquery/internal/core/fake"
	"txquery/internal/query"
	"txquery/internal/repository"

	"github.com/ethereum/go-ethereum/rlp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Explorer", func() {
	var (
		fakeRepo *fake.Repository
		explorer *core.Explorer
		ctx      context.Context
		fakeErr  error
		vote     repository.Transaction
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		explorer = core.NewExplorer(zap.NewNop().Sugar(), fakeRepo)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		vote = repository.Transaction{
			ID:              strings.Repeat("a", 64),
			Type:            repository.Vote,
			SenderPublicKey: "pk",
		}
	})

	Describe("Transaction", func() {
		var (
			record core.TransactionRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = explorer.Transaction(ctx, vote.ID)
		})

		When("the transaction exists", func() {
			BeforeEach(func() {
				fakeRepo.FindByIDReturns(&vote, nil)
			})

			It("should return it with its type name", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(vote.ID))
				Expect(record.Type).To(Equal(uint8(3)))
				Expect(record.TypeName).To(Equal("vote"))
				_, id := fakeRepo.FindByIDArgsForCall(0)
				Expect(id).To(Equal(vote.ID))
			})
		})

		When("the transaction is absent", func() {
			BeforeEach(func() {
				fakeRepo.FindByIDReturns(nil, nil)
			})

			It("should return ErrTransactionNotFound", func() {
				Expect(err).To(MatchError(core.ErrTransactionNotFound))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.FindByIDReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrTransactionNotFound))
			})
		})
	})

	Describe("TransactionOfType", func() {
		It("should pass the type through", func() {
			fakeRepo.FindByTypeAndIDReturns(nil, nil)

			_, err := explorer.TransactionOfType(ctx, 2, vote.ID)
			Expect(err).To(MatchError(core.ErrTransactionNotFound))

			_, txType, id := fakeRepo.FindByTypeAndIDArgsForCall(0)
			Expect(txType).To(Equal(repository.DelegateRegistration))
			Expect(id).To(Equal(vote.ID))
		})

		It("should report a type outside the stored range as not found", func() {
			_, err := explorer.TransactionOfType(ctx, 300, vote.ID)
			Expect(err).To(MatchError(core.ErrTransactionNotFound))

			_, err = explorer.TransactionOfType(ctx, -1, vote.ID)
			Expect(err).To(MatchError(core.ErrTransactionNotFound))
			Expect(fakeRepo.FindByTypeAndIDCallCount()).To(BeZero())
		})
	})

	Describe("Transactions", func() {
		var (
			ids     []string
			records []core.TransactionRecord
			err     error
		)

		BeforeEach(func() {
			ids = []string{"c", "a", "missing", "b"}
			fakeRepo.FindByIDStub = func(ctx context.Context, id string) (*repository.Transaction, error) {
				if id == "missing" {
					return nil, nil
				}
				return &repository.Transaction{ID: id}, nil
			}
		})

		JustBeforeEach(func() {
			records, err = explorer.Transactions(ctx, ids)
		})

		It("should keep the requested order and skip unknown ids", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0].ID).To(Equal("c"))
			Expect(records[1].ID).To(Equal("a"))
			Expect(records[2].ID).To(Equal("b"))
			Expect(fakeRepo.FindByIDCallCount()).To(Equal(4))
		})

		When("more ids than the page cap are requested", func() {
			BeforeEach(func() {
				ids = make([]string, query.MaxLimit+1)
			})

			It("should reject the batch without querying", func() {
				Expect(err).To(MatchError(core.ErrInvalidRequest))
				Expect(fakeRepo.FindByIDCallCount()).To(BeZero())
			})
		})

		When("lookups block", func() {
			var (
				inFlight, peak int32
				release        chan struct{}
			)

			BeforeEach(func() {
				inFlight, peak = 0, 0
				release = make(chan struct{})
				ids = make([]string, 200)
				for i := range ids {
					ids[i] = fmt.Sprintf("%064x", i)
				}
				fakeRepo.FindByIDStub = func(ctx context.Context, id string) (*repository.Transaction, error) {
					n := atomic.AddInt32(&inFlight, 1)
					for {
						p := atomic.LoadInt32(&peak)
						if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
							break
						}
					}
					<-release
					atomic.AddInt32(&inFlight, -1)
					return &repository.Transaction{ID: id}, nil
				}
				go func() {
					defer GinkgoRecover()
					Eventually(func() int32 { return atomic.LoadInt32(&inFlight) }).Should(Equal(int32(16)))
					close(release)
				}()
			})

			It("should bound the lookups in flight", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(200))
				Expect(atomic.LoadInt32(&peak)).To(Equal(int32(16)))
			})
		})

		When("some lookups fail", func() {
			BeforeEach(func() {
				fakeRepo.FindByIDStub = func(ctx context.Context, id string) (*repository.Transaction, error) {
					if id == "a" || id == "b" {
						return nil, fakeErr
					}
					return &repository.Transaction{ID: id}, nil
				}
			})

			It("should join the errors", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring(`"a"`))
				Expect(err.Error()).To(ContainSubstring(`"b"`))
				Expect(records).To(BeNil())
			})
		})
	})

	Describe("TransactionsRLP", func() {
		It("should decode ids from an rlp list", func() {
			first, _ := hex.DecodeString(strings.Repeat("ab", 32))
			second, _ := hex.DecodeString(strings.Repeat("cd", 32))
			encoded, err := rlp.EncodeToBytes([][]byte{first, second})
			Expect(err).NotTo(HaveOccurred())

			fakeRepo.FindByIDStub = func(ctx context.Context, id string) (*repository.Transaction, error) {
				return &repository.Transaction{ID: id}, nil
			}

			records, err := explorer.TransactionsRLP(ctx, hex.EncodeToString(encoded))
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].ID).To(Equal(strings.Repeat("ab", 32)))
			Expect(records[1].ID).To(Equal(strings.Repeat("cd", 32)))
		})

		It("should reject malformed input", func() {
			_, err := explorer.TransactionsRLP(ctx, "zz")
			Expect(err).To(MatchError(core.ErrInvalidRequest))

			_, err = explorer.TransactionsRLP(ctx, "01")
			Expect(err).To(MatchError(core.ErrInvalidRequest))
			Expect(fakeRepo.FindByIDCallCount()).To(BeZero())
		})

		It("should reject ids that are not 32 bytes", func() {
			encoded, err := rlp.EncodeToBytes([][]byte{{0xab, 0xcd}})
			Expect(err).NotTo(HaveOccurred())

			_, err = explorer.TransactionsRLP(ctx, hex.EncodeToString(encoded))
			Expect(err).To(MatchError(core.ErrInvalidRequest))
			Expect(err.Error()).To(ContainSubstring("2 bytes"))
			Expect(fakeRepo.FindByIDCallCount()).To(BeZero())
		})

		It("should reject lists longer than the page cap before querying", func() {
			id, _ := hex.DecodeString(strings.Repeat("ab", 32))
			idBytes := make([][]byte, query.MaxLimit+1)
			for i := range idBytes {
				idBytes[i] = id
			}
			encoded, err := rlp.EncodeToBytes(idBytes)
			Expect(err).NotTo(HaveOccurred())

			_, err = explorer.TransactionsRLP(ctx, hex.EncodeToString(encoded))
			Expect(err).To(MatchError(core.ErrInvalidRequest))
			Expect(fakeRepo.FindByIDCallCount()).To(BeZero())
		})
	})

	Describe("Search", func() {
		var page query.Pagination

		BeforeEach(func() {
			page = query.Pagination{Offset: 5, Limit: 10}
			envelope := repository.Envelope{Count: 42, Rows: []repository.Transaction{vote}}
			fakeRepo.FindAllReturns(envelope, nil)
			fakeRepo.SearchReturns(envelope, nil)
		})

		When("criteria are empty", func() {
			It("should list every transaction", func() {
				result, err := explorer.Search(ctx, query.Criteria{}, page)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Count).To(Equal(int64(42)))
				Expect(result.Transactions).To(HaveLen(1))

				Expect(fakeRepo.FindAllCallCount()).To(Equal(1))
				Expect(fakeRepo.SearchCallCount()).To(BeZero())
				_, gotPage := fakeRepo.FindAllArgsForCall(0)
				Expect(gotPage).To(Equal(page))
			})
		})

		When("criteria are given", func() {
			It("should search", func() {
				criteria := query.Criteria{"type": 3}
				_, err := explorer.Search(ctx, criteria, page)
				Expect(err).NotTo(HaveOccurred())

				_, gotCriteria, _ := fakeRepo.SearchArgsForCall(0)
				Expect(gotCriteria).To(Equal(criteria))
			})
		})

		When("criteria are invalid", func() {
			BeforeEach(func() {
				fakeRepo.SearchReturns(repository.Envelope{}, repository.ErrInvalidArgument)
			})

			It("should return ErrInvalidRequest", func() {
				_, err := explorer.Search(ctx, query.Criteria{"amount": "x"}, page)
				Expect(err).To(MatchError(core.ErrInvalidRequest))
			})
		})

		When("the store is unavailable", func() {
			BeforeEach(func() {
				fakeRepo.SearchReturns(repository.Envelope{}, repository.ErrStoreUnavailable)
			})

			It("should not report a client error", func() {
				_, err := explorer.Search(ctx, query.Criteria{"type": 3}, page)
				Expect(err).To(MatchError(repository.ErrStoreUnavailable))
				Expect(err).NotTo(MatchError(core.ErrInvalidRequest))
			})
		})
	})

	Describe("WalletTransactions", func() {
		It("should forward the wallet", func() {
			fakeRepo.FindAllByWalletReturns(repository.Envelope{Count: 2}, nil)

			result, err := explorer.WalletTransactions(ctx, core.Wallet{Address: "addr", PublicKey: "pk"}, query.Pagination{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Count).To(Equal(int64(2)))
			Expect(result.Transactions).To(BeEmpty())

			_, wallet, _ := fakeRepo.FindAllByWalletArgsForCall(0)
			Expect(wallet).To(Equal(repository.Wallet{Address: "addr", PublicKey: "pk"}))
		})
	})

	Describe("indexed listings", func() {
		It("should route each listing to its repository lookup", func() {
			page := query.Pagination{Limit: 1}

			_, err := explorer.SenderTransactions(ctx, "pk", page)
			Expect(err).NotTo(HaveOccurred())
			_, sender, _ := fakeRepo.FindAllBySenderArgsForCall(0)
			Expect(sender).To(Equal("pk"))

			_, err = explorer.RecipientTransactions(ctx, "addr", page)
			Expect(err).NotTo(HaveOccurred())
			_, recipient, _ := fakeRepo.FindAllByRecipientArgsForCall(0)
			Expect(recipient).To(Equal("addr"))

			_, err = explorer.Votes(ctx, "pk", page)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.AllVotesBySenderCallCount()).To(Equal(1))

			_, err = explorer.BlockTransactions(ctx, "block", page)
			Expect(err).NotTo(HaveOccurred())
			_, block, _ := fakeRepo.FindAllByBlockArgsForCall(0)
			Expect(block).To(Equal("block"))

			_, err = explorer.TypeTransactions(ctx, 3, page)
			Expect(err).NotTo(HaveOccurred())
			_, txType, _ := fakeRepo.FindAllByTypeArgsForCall(0)
			Expect(txType).To(Equal(repository.Vote))
		})

		It("should return an empty page for a type outside the stored range", func() {
			result, err := explorer.TypeTransactions(ctx, 300, query.Pagination{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Count).To(BeZero())
			Expect(result.Transactions).To(BeEmpty())
			Expect(fakeRepo.FindAllByTypeCallCount()).To(BeZero())

			_, err = explorer.TypeTransactions(ctx, 300, query.Pagination{Offset: -1})
			Expect(err).To(MatchError(core.ErrInvalidRequest))
		})
	})
})
