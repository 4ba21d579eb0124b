package tx

// Universal flags apply to any transaction type.
const (
	// TfFullyCanonicalSig requires a fully canonical signature
	TfFullyCanonicalSig uint32 = 0x80000000
)

// AccountSet transaction flags
const (
	TfRequireDestTag  uint32 = 0x00010000
	TfOptionalDestTag uint32 = 0x00020000
	TfRequireAuth     uint32 = 0x00040000
	TfOptionalAuth    uint32 = 0x00080000
	TfDisallowSWT     uint32 = 0x00100000
	TfAllowSWT        uint32 = 0x00200000
)

// TrustSet transaction flags
const (
	TfSetAuth        uint32 = 0x00010000
	TfSetNoSkywell   uint32 = 0x00020000
	TfClearNoSkywell uint32 = 0x00040000
	TfSetFreeze      uint32 = 0x00100000
	TfClearFreeze    uint32 = 0x00200000
)

// OfferCreate transaction flags
const (
	TfPassive           uint32 = 0x00010000
	TfImmediateOrCancel uint32 = 0x00020000
	TfFillOrKill        uint32 = 0x00040000
	// TfSell exchanges the entire TakerGets even if it yields more than TakerPays
	TfSell uint32 = 0x00080000
)

// Payment transaction flags
const (
	TfNoSkywellDirect uint32 = 0x00010000
	TfPartialPayment  uint32 = 0x00020000
	TfLimitQuality    uint32 = 0x00040000
)

// RelationSet transaction flags
const (
	TfAuthorize uint32 = 0x00000001
	TfFreeze    uint32 = 0x00000011
)

// AccountSet account flags, for SetFlag and ClearFlag
const (
	AsfRequireDest   uint32 = 1
	AsfRequireAuth   uint32 = 2
	AsfDisallowSWT   uint32 = 3
	AsfDisableMaster uint32 = 4
	AsfNoFreeze      uint32 = 6
	AsfGlobalFreeze  uint32 = 7
)

var universalFlags = map[string]uint32{
	"FullyCanonicalSig": TfFullyCanonicalSig,
}

// txFlags maps flag names to bits per transaction type.
var txFlags = map[string]map[string]uint32{
	TypeAccountSet: {
		"RequireDestTag":  TfRequireDestTag,
		"OptionalDestTag": TfOptionalDestTag,
		"RequireAuth":     TfRequireAuth,
		"OptionalAuth":    TfOptionalAuth,
		"DisallowSWT":     TfDisallowSWT,
		"AllowSWT":        TfAllowSWT,
	},
	TypeTrustSet: {
		"SetAuth":        TfSetAuth,
		"NoSkywell":      TfSetNoSkywell,
		"SetNoSkywell":   TfSetNoSkywell,
		"ClearNoSkywell": TfClearNoSkywell,
		"SetFreeze":      TfSetFreeze,
		"ClearFreeze":    TfClearFreeze,
	},
	TypeOfferCreate: {
		"Passive":           TfPassive,
		"ImmediateOrCancel": TfImmediateOrCancel,
		"FillOrKill":        TfFillOrKill,
		"Sell":              TfSell,
	},
	TypePayment: {
		"NoSkywellDirect": TfNoSkywellDirect,
		"PartialPayment":  TfPartialPayment,
		"LimitQuality":    TfLimitQuality,
	},
	TypeRelationSet: {
		"Authorize": TfAuthorize,
		"Freeze":    TfFreeze,
	},
}

var accountSetFlags = map[string]uint32{
	"asfRequireDest":   AsfRequireDest,
	"asfRequireAuth":   AsfRequireAuth,
	"asfDisallowSWT":   AsfDisallowSWT,
	"asfDisableMaster": AsfDisableMaster,
	"asfNoFreeze":      AsfNoFreeze,
	"asfGlobalFreeze":  AsfGlobalFreeze,
}

// LookupFlag resolves a symbolic flag for a transaction type. Universal
// flags resolve for every type.
func LookupFlag(txType, name string) (uint32, bool) {
	if bit, ok := txFlags[txType][name]; ok {
		return bit, true
	}
	bit, ok := universalFlags[name]
	return bit, ok
}

// AccountSetFlag resolves an account flag by name, with or without the
// "asf" prefix, or by its decimal number. It returns 0 for unknown names.
func AccountSetFlag(name string) uint32 {
	if bit, ok := accountSetFlags[name]; ok {
		return bit
	}
	if bit, ok := accountSetFlags["asf"+name]; ok {
		return bit
	}
	if n, ok := parseUint32(name); ok {
		return n
	}
	return 0
}
