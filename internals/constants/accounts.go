package constants

// Account-group names the ledger provisioning creates per school.
const (
	AccountGroupStudent    = "ACCOUNT"
	AccountGroupPayment    = "PAYMENT"
	AccountGroupReceivable = "RECEIVABLE"
)

// Payment modes accepted on an enrollment submission.
const (
	PaymentModeCash = "cash"
	PaymentModeBank = "bank"
)

// Fixed ledger account names. Payment-mode and receivable accounts are
// provisioned data; the workflow looks them up and never creates them.
const (
	AccountNameCash           = "Cash"
	AccountNameBank           = "Bank"
	AccountNameFeesReceivable = "Fees Receivable"
)

// PaymentAccountName maps a payment mode to its ledger account name.
// Returns "" for an unknown mode.
func PaymentAccountName(mode string) string {
	switch mode {
	case PaymentModeCash:
		return AccountNameCash
	case PaymentModeBank:
		return AccountNameBank
	default:
		return ""
	}
}
