package model

type Chain struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ContractAddress string `json:"contract_address"`
	ExplorerURL     string `json:"explorer_url"`
}

type GetConfigRequest struct{}

type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Page is the static content around the live cards.
type Page struct {
	Badge         string       `json:"badge"`
	HeroTitle     string       `json:"hero_title"`
	HeroHighlight string       `json:"hero_highlight"`
	HeroText      string       `json:"hero_text"`
	MintTitle     string       `json:"mint_title"`
	MintSubtitle  string       `json:"mint_subtitle"`
	Features      []Feature    `json:"features"`
	Socials       []SocialLink `json:"socials"`
}

type GetConfigResponse struct {
	AppName        string  `json:"app_name"`
	ProjectID      string  `json:"project_id"`
	DefaultChainID int64   `json:"default_chain_id"`
	Chains         []Chain `json:"chains"`
	Page           Page    `json:"page"`
}

type Navbar struct {
	AppName      string `json:"app_name"`
	Connected    bool   `json:"connected"`
	Address      string `json:"address"`
	ShortAddress string `json:"short_address"`
	ChainID      int64  `json:"chain_id"`
	ProjectID    string `json:"project_id"`
}

type GetNavbarRequest struct{}

type GetNavbarResponse struct {
	Navbar
}

type TokenStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type GetTokenStatsRequest struct{}

type GetTokenStatsResponse struct {
	Stats       []TokenStat `json:"stats"`
	TotalSupply string      `json:"total_supply"`
}

type MintForm struct {
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	ErrorMessage  string `json:"error_message"`
	StatusMessage string `json:"status_message"`
	TxHash        string `json:"tx_hash"`
	ExplorerURL   string `json:"explorer_url"`
	CanSubmit     bool   `json:"can_submit"`
	ButtonLabel   string `json:"button_label"`
	InputDisabled bool   `json:"input_disabled"`
}

type MintCard struct {
	Connected bool `json:"connected"`

	// Only set while disconnected.
	PromptTitle string `json:"prompt_title,omitempty"`
	Prompt      string `json:"prompt,omitempty"`

	Address      string    `json:"address,omitempty"`
	ShortAddress string    `json:"short_address,omitempty"`
	ChainID      int64     `json:"chain_id,omitempty"`
	Balance      string    `json:"balance,omitempty"`
	Symbol       string    `json:"symbol,omitempty"`
	Form         *MintForm `json:"form,omitempty"`
}

type GetMintCardRequest struct{}

type GetMintCardResponse struct {
	MintCard
}

type MintTransaction struct {
	ID          string `json:"id"`
	ChainID     int64  `json:"chain_id"`
	TxHash      string `json:"tx_hash"`
	Contract    string `json:"contract"`
	Account     string `json:"account"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	ExplorerURL string `json:"explorer_url"`
	CreatedAt   string `json:"created_at"`
}

type GetMintHistoryRequest struct {
	Limit int `json:"limit" form:"limit"`
}

type GetMintHistoryResponse struct {
	Transactions []MintTransaction `json:"transactions"`
}

type ConnectWalletRequest struct {
	ChainID int64 `json:"chain_id"`
}

type ConnectWalletResponse struct {
	Navbar
}

type DisconnectWalletRequest struct{}

type DisconnectWalletResponse struct{}

type SwitchChainRequest struct {
	ChainID int64 `json:"chain_id"`
}

type SwitchChainResponse struct {
	Navbar
}

type SetMintAmountRequest struct {
	Amount string `json:"amount"`
}

type SetMintAmountResponse struct {
	Form MintForm `json:"form"`
}

type MintRequest struct{}

type MintResponse struct {
	Form MintForm `json:"form"`
}
