package keyword

// Promotional and scam vocabulary. Entries are matched as substrings, so short
// entries such as "app" or "win" also hit inside larger words.
var defaultTerms = []string{
    // promotional / giveaway
    "free", "giveaway", "claim", "subscription", "survey", "hurry", "gift", "prize", "win",
    "discount", "offer", "deal", "promo", "bonus", "reward", "cash", "money",
    "earn", "make money", "income", "profit", "investment", "bitcoin", "crypto",
    "lottery", "jackpot", "winner", "congratulations", "urgent", "limited time",
    "act now", "click here", "sign up", "register", "join now", "apply now",
    "get started", "download", "install", "app", "mobile app", "software",

    // loans and financial scams
    "loan", "instant loan", "quick loan", "easy loan", "personal loan", "business loan",
    "home loan", "car loan", "education loan", "approval", "no credit check", "bad credit",
    "pre-approved", "guaranteed approval", "instant approval", "fast approval",
    "no documentation", "minimal documentation", "online loan", "loan online",
    "get loan", "apply for loan", "loan application", "loan offer", "loan deal",
    "funds", "receive funds", "transfer funds", "disburse", "disbursement",
    "emi", "interest rate", "low interest", "zero interest", "flexible repayment",
    "collateral free", "unsecured loan", "secured loan", "loan against",

    // impersonated services
    "netflix", "spotify", "amazon", "uber", "paypal", "ebay", "facebook", "instagram",
    "google", "apple", "microsoft", "bank", "account", "password", "verify",

    // phishing
    "alert", "warning", "locked", "suspended", "security", "breach", "hack",
    "compromised", "unauthorized", "verify", "confirm", "validate", "secure",
    "login", "update", "reset", "immediately", "urgent", "action required",
    "account suspended", "bank account", "credit card", "social security",
    "tax refund", "inheritance", "lottery win", "prize claim", "wire transfer",

    // suspicious url fragments
    ".net", "secure-", "verify-", "login-", "account-", "bank-", "paypal-",
    "amazon-", "apple-", "microsoft-", "google-", "facebook-", "instagram-",

    // pressure
    "now", "today", "immediately", "asap", "deadline", "expires", "limited",
    "last chance", "final notice", "time sensitive", "do not ignore", "tag 5 friends",
}

// DefaultTerms returns a copy of the built-in keyword list.
func DefaultTerms() []string {
    out := make([]string, len(defaultTerms))
    copy(out, defaultTerms)
    return out
}
