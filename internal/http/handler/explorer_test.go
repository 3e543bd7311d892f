package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"txquery/internal/core"
	"txquery/internal/http/handler"
	"txquery/internal/http/handler/fake"
	"txquery/internal/http/payload"
	"txquery/internal/query"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ExplorerHandler", func() {
	var (
		eh            *handler.ExplorerHandler
		fakeService   *fake.TransactionService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		txID          string
		testPage      core.Page
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.TransactionService)
		fakeValidator = new(fake.RequestValidator)
		txID = strings.Repeat("ab", 32)
		testPage = core.Page{
			Count:        42,
			Transactions: []core.TransactionRecord{{ID: txID, Type: 3, TypeName: "vote"}},
		}

		w = httptest.NewRecorder()
		eh = handler.NewExplorerHandler(fakeLogger, fakeValidator, fakeService)
	})

	decodePage := func() core.Page {
		var page core.Page
		Expect(json.NewDecoder(w.Body).Decode(&page)).To(Succeed())
		return page
	}

	Describe("HandleListTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/transactions?type=3&amount.from=10&offset=5&limit=20", nil)
			fakeService.SearchReturns(testPage, nil)
		})

		JustBeforeEach(func() {
			eh.HandleListTransactions(w, req)
		})

		It("should search with criteria and page from the query", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodePage()).To(Equal(testPage))

			Expect(fakeService.SearchCallCount()).To(Equal(1))
			_, criteria, page := fakeService.SearchArgsForCall(0)
			Expect(criteria).To(Equal(query.Criteria{
				"type":   "3",
				"amount": map[string]any{"from": "10"},
			}))
			Expect(page).To(Equal(query.Pagination{Offset: 5, Limit: 20}))
		})

		When("the limit is above the cap", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/api/transactions?limit=5000", nil)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SearchCallCount()).To(Equal(0))
			})
		})

		When("a field is both exact and ranged", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/api/transactions?amount=5&amount.from=1", nil)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SearchCallCount()).To(Equal(0))
			})
		})

		When("the criteria are invalid", func() {
			BeforeEach(func() {
				fakeService.SearchReturns(core.Page{}, fmt.Errorf("%w: amount", core.ErrInvalidRequest))
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("amount"))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.SearchReturns(core.Page{}, fakeErr)
			})

			It("should return 500 without leaking the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleSearchTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/transactions/search", strings.NewReader(`{}`))
			fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, object any) error {
				search := object.(*payload.SearchRequest)
				search.Criteria = query.Criteria{"fee": map[string]any{"to": 100}}
				search.Limit = 10
				return nil
			}
			fakeService.SearchReturns(testPage, nil)
		})

		JustBeforeEach(func() {
			eh.HandleSearchTransactions(w, req)
		})

		It("should search with the decoded body", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
			argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
			Expect(argReq).To(Equal(req))

			_, criteria, page := fakeService.SearchArgsForCall(0)
			Expect(criteria).To(HaveKey("fee"))
			Expect(page.Limit).To(Equal(10))
		})

		When("the body is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.SearchCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetTransaction", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/transactions/"+txID, nil)
			req.SetPathValue("id", txID)
			fakeService.TransactionReturns(testPage.Transactions[0], nil)
		})

		JustBeforeEach(func() {
			eh.HandleGetTransaction(w, req)
		})

		It("should return the transaction", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]core.TransactionRecord
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["transaction"].ID).To(Equal(txID))

			_, id := fakeService.TransactionArgsForCall(0)
			Expect(id).To(Equal(txID))
		})

		When("the id is malformed", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "xyz")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionCallCount()).To(Equal(0))
			})
		})

		When("the transaction does not exist", func() {
			BeforeEach(func() {
				fakeService.TransactionReturns(core.TransactionRecord{}, core.ErrTransactionNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrTransactionNotFound.Error()))
			})
		})
	})

	Describe("HandleGetTransactionOfType", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/transactions/types/3/"+txID, nil)
			req.SetPathValue("type", "3")
			req.SetPathValue("id", txID)
			fakeService.TransactionOfTypeReturns(testPage.Transactions[0], nil)
		})

		JustBeforeEach(func() {
			eh.HandleGetTransactionOfType(w, req)
		})

		It("should look up by type and id", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, txType, id := fakeService.TransactionOfTypeArgsForCall(0)
			Expect(txType).To(Equal(int64(3)))
			Expect(id).To(Equal(txID))
		})

		When("the type is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("type", "vote")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionOfTypeCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetTransactionsRLP", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/transactions/batch/c0", nil)
			req.SetPathValue("rlp", "c0")
			fakeService.TransactionsRLPReturns(testPage.Transactions, nil)
		})

		JustBeforeEach(func() {
			eh.HandleGetTransactionsRLP(w, req)
		})

		It("should return the transactions", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(txID))
		})

		When("the parameter is not hex", func() {
			BeforeEach(func() {
				req.SetPathValue("rlp", "zz")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionsRLPCallCount()).To(Equal(0))
			})
		})

		When("the payload does not decode", func() {
			BeforeEach(func() {
				fakeService.TransactionsRLPReturns(nil, fmt.Errorf("%w: rlp", core.ErrInvalidRequest))
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleGetWalletTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/wallets/AXyz/transactions?publicKey=02ab", nil)
			req.SetPathValue("address", "AXyz")
			fakeService.WalletTransactionsReturns(testPage, nil)
		})

		JustBeforeEach(func() {
			eh.HandleGetWalletTransactions(w, req)
		})

		It("should pass address and public key", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, wallet, page := fakeService.WalletTransactionsArgsForCall(0)
			Expect(wallet).To(Equal(core.Wallet{Address: "AXyz", PublicKey: "02ab"}))
			Expect(page).To(Equal(query.Pagination{}))
		})
	})

	Describe("listing routes", func() {
		It("should forward path values to the service", func() {
			req = httptest.NewRequest(http.MethodGet, "/api/blocks/77/transactions", nil)
			req.SetPathValue("blockId", "77")
			fakeService.BlockTransactionsReturns(testPage, nil)
			eh.HandleGetBlockTransactions(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			_, blockID, _ := fakeService.BlockTransactionsArgsForCall(0)
			Expect(blockID).To(Equal("77"))

			w = httptest.NewRecorder()
			req = httptest.NewRequest(http.MethodGet, "/api/types/2/transactions", nil)
			req.SetPathValue("type", "2")
			fakeService.TypeTransactionsReturns(testPage, nil)
			eh.HandleGetTypeTransactions(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			_, txType, _ := fakeService.TypeTransactionsArgsForCall(0)
			Expect(txType).To(Equal(int64(2)))

			w = httptest.NewRecorder()
			req = httptest.NewRequest(http.MethodGet, "/api/types/300/transactions", nil)
			req.SetPathValue("type", "300")
			fakeService.TypeTransactionsReturns(core.Page{Transactions: []core.TransactionRecord{}}, nil)
			eh.HandleGetTypeTransactions(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			_, txType, _ = fakeService.TypeTransactionsArgsForCall(1)
			Expect(txType).To(Equal(int64(300)))

			w = httptest.NewRecorder()
			req = httptest.NewRequest(http.MethodGet, "/api/senders/02ab/transactions", nil)
			req.SetPathValue("publicKey", "02ab")
			fakeService.SenderTransactionsReturns(testPage, nil)
			eh.HandleGetSenderTransactions(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			_, sender, _ := fakeService.SenderTransactionsArgsForCall(0)
			Expect(sender).To(Equal("02ab"))

			w = httptest.NewRecorder()
			req = httptest.NewRequest(http.MethodGet, "/api/recipients/AXyz/transactions", nil)
			req.SetPathValue("address", "AXyz")
			fakeService.RecipientTransactionsReturns(testPage, nil)
			eh.HandleGetRecipientTransactions(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			_, recipient, _ := fakeService.RecipientTransactionsArgsForCall(0)
			Expect(recipient).To(Equal("AXyz"))

			w = httptest.NewRecorder()
			req = httptest.NewRequest(http.MethodGet, "/api/votes/02ab", nil)
			req.SetPathValue("publicKey", "02ab")
			fakeService.VotesReturns(testPage, nil)
			eh.HandleGetVotes(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodePage().Count).To(Equal(int64(42)))
		})
	})

	Describe("Register", func() {
		It("should route requests through the mux", func() {
			mux := http.NewServeMux()
			eh.Register(mux)
			fakeService.TransactionReturns(testPage.Transactions[0], nil)
			fakeService.TransactionsRLPReturns(nil, nil)

			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transactions/"+txID, nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.TransactionCallCount()).To(Equal(1))

			w = httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transactions/batch/c0", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.TransactionsRLPCallCount()).To(Equal(1))
		})
	})
})
