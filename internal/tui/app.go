package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/adminops"
	"github.com/nusahq/nusapp/internal/assistant"
	"github.com/nusahq/nusapp/internal/config"
	"github.com/nusahq/nusapp/internal/database/repository"
	"github.com/nusahq/nusapp/internal/navigation"
	"github.com/nusahq/nusapp/internal/orders"
	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

// Repos bundles the catalog repositories the surfaces read from.
type Repos struct {
	Products *repository.ProductRepo
	Wallet   *repository.WalletTransactionRepo
	Users    *repository.DirectoryUserRepo
}

// Deps bundles the session core and services wired in from main.
type Deps struct {
	Controller *session.Controller
	Navigator  navigation.Navigator
	Scheduler  wizard.Scheduler
	Bot        assistant.Assistant
	Directory  *adminops.Directory
}

type authStage int

const (
	stageLanding authStage = iota
	stageLoginRole
	stageLoginName
	stageRegisterRole
	stageRegisterForm
	stageWelcome
)

// confirmPrompt is the blocking yes/no card. accept re-invokes the
// guarded operation with confirmation.
type confirmPrompt struct {
	title  string
	body   string
	accept func() tea.Cmd
}

type chatLine struct {
	fromBot bool
	text    string
}

// App drives every surface of the terminal client. One instance per
// process; all mutation happens on the update loop.
type App struct {
	ctx   context.Context
	cfg   config.Config
	repos Repos

	ctrl  *session.Controller
	nav   navigation.Navigator
	sched wizard.Scheduler
	bot   assistant.Assistant

	width  int
	height int
	status string

	// auth
	stage          authStage
	roleCursor     int
	nameInput      string
	reg            *wizard.Wizard
	regRole        session.Role
	regField       int
	pendingProfile session.Profile

	// catalog data
	products      []repository.Product
	walletHistory []repository.WalletTransaction
	marketQuery   string
	marketSearch  bool
	marketCursor  int
	walletFilter  string

	// service flow overlay (ride / car / parcel / cargo)
	flow      *wizard.Wizard
	flowKind  session.ServiceFlow
	flowField int
	placement *wizard.Action

	// wallet action overlay (top-up / transfer)
	walletWiz  *wizard.Wizard
	walletKind session.WalletAction
	walletFld  int
	settlement *wizard.Action

	// driver payout overlay
	withdrawWiz *wizard.Wizard
	withdrawFld int
	payout      *wizard.Action

	// driver
	driverOnline bool
	driverTrip   bool

	// merchant
	orders      *orders.Queue
	orderCursor int

	// admin
	dir        *adminops.Directory
	vouchers   *adminops.VoucherBook
	verify     *adminops.VerificationQueue
	userCursor int
	userQuery  string
	userSearch bool
	userTab    int // index into userTabs
	vchCursor  int
	vchForm    *voucherForm
	verCursor  int
	configTab  int

	rolePick   bool
	pickCursor int

	confirm *confirmPrompt

	chatOpen  bool
	chatInput string
	chatLog   []chatLine
	chatBusy  bool
}

func New(ctx context.Context, cfg config.Config, repos Repos, deps Deps) *App {
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		repos:    repos,
		ctrl:     deps.Controller,
		nav:      deps.Navigator,
		sched:    deps.Scheduler,
		bot:      deps.Bot,
		dir:      deps.Directory,
		vouchers: adminops.NewVoucherBook(adminops.SeedVouchers()),
		verify:   adminops.NewVerificationQueue(adminops.SeedApplications()),
		width:    100,
		height:   32,
	}
	if a.dir == nil {
		a.dir = adminops.NewDirectory(nil)
	}
	a.ctrl.OnReset = a.discardEphemeral
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadProducts(""), a.loadWalletHistory(""))
}

func (a *App) loadProducts(query string) tea.Cmd {
	return func() tea.Msg {
		var (
			list []repository.Product
			err  error
		)
		if query != "" {
			list, err = a.repos.Products.Search(a.ctx, query)
		} else {
			list, err = a.repos.Products.List(a.ctx, "")
		}
		if err != nil {
			return errMsg{err}
		}
		return productsMsg(list)
	}
}

func (a *App) loadWalletHistory(direction string) tea.Cmd {
	return func() tea.Msg {
		list, err := a.repos.Wallet.List(a.ctx, direction)
		if err != nil {
			return errMsg{err}
		}
		return walletHistoryMsg(list)
	}
}

// discardEphemeral drops everything scoped to the old role. Installed as
// the controller's reset hook so logout and role switches cannot leak a
// wizard or a pending settlement across sessions.
func (a *App) discardEphemeral() {
	a.flow = nil
	a.flowKind = session.FlowNone
	a.flowField = 0
	a.placement = nil
	a.walletWiz = nil
	a.walletKind = session.WalletNone
	a.walletFld = 0
	a.settlement = nil
	a.withdrawWiz = nil
	a.withdrawFld = 0
	a.payout = nil
	a.driverOnline = false
	a.driverTrip = false
	a.orderCursor = 0
	a.rolePick = false
	a.chatOpen = false
	a.chatInput = ""
	a.chatBusy = false
	a.marketSearch = false
	a.userSearch = false
	a.vchForm = nil
	a.status = ""
}

// enterRole provisions per-role state after a successful login or role
// switch.
func (a *App) enterRole(role session.Role) {
	if role == session.RoleMerchant {
		a.orders = orders.NewQueue(a.sched, orders.AcceptLinger, orders.Seed())
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case applyMsg:
		m.fn()
	case productsMsg:
		a.products = []repository.Product(m)
		if a.marketCursor >= len(a.products) {
			a.marketCursor = 0
		}
	case walletHistoryMsg:
		a.walletHistory = []repository.WalletTransaction(m)
	case botReplyMsg:
		a.chatBusy = false
		a.chatLog = append(a.chatLog, chatLine{fromBot: true, text: m.text})
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.confirm != nil {
		return a.handleConfirmKey(m)
	}
	if a.chatOpen {
		return a.handleChatKey(m)
	}
	if !a.ctrl.Snapshot().Authenticated {
		return a.handleAuthKey(m)
	}
	if a.flow != nil || a.placement != nil {
		return a.handleFlowKey(m)
	}
	if a.walletWiz != nil || a.settlement != nil {
		return a.handleWalletActionKey(m)
	}
	if a.withdrawWiz != nil || a.payout != nil {
		return a.handleWithdrawKey(m)
	}
	if a.rolePick {
		return a.handleRolePickKey(m)
	}
	return a.handleMainKey(m)
}

func (a *App) handleConfirmKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "y", "Y", "enter":
		p := a.confirm
		a.confirm = nil
		if p.accept != nil {
			return a, p.accept()
		}
	case "n", "N", "esc":
		a.confirm = nil
	}
	return a, nil
}

func (a *App) handleMainKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.surfaceInputActive() {
		return a.handleSurfaceInput(m)
	}
	snap := a.ctrl.Snapshot()
	tabs := a.nav.ReachableFor(snap.Role)

	switch m.String() {
	case "q":
		return a, tea.Quit
	case "tab":
		a.gotoTab(tabs, nextIndex(tabs, snap.Destination))
		return a, nil
	case "shift+tab":
		a.gotoTab(tabs, prevIndex(tabs, snap.Destination))
		return a, nil
	case "c":
		a.chatOpen = true
		return a, nil
	case "R":
		a.rolePick = true
		a.pickCursor = roleIndex(snap.Role)
		return a, nil
	case "L":
		if a.ctrl.Logout(false) == session.ConfirmationRequired {
			a.confirm = &confirmPrompt{
				title: "Keluar dari akun?",
				body:  "Sesi dan alur yang berjalan akan dibuang.",
				accept: func() tea.Cmd {
					a.ctrl.Logout(true)
					a.stage = stageLanding
					a.roleCursor = 0
					a.nameInput = ""
					return nil
				},
			}
		}
		return a, nil
	}

	if idx, ok := digitIndex(m.String(), len(tabs)); ok {
		a.gotoTab(tabs, idx)
		return a, nil
	}
	return a.handleSurfaceKey(m, snap)
}

func (a *App) gotoTab(tabs []string, idx int) {
	if idx < 0 || idx >= len(tabs) {
		return
	}
	if a.ctrl.SetDestination(tabs[idx]) == session.Done {
		a.status = ""
		if tabs[idx] == navigation.DestWallet {
			a.mountWallet()
		}
	}
}

func (a *App) handleRolePickKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.rolePick = false
	case "up", "k":
		if a.pickCursor > 0 {
			a.pickCursor--
		}
	case "down", "j":
		if a.pickCursor < len(session.AllRoles)-1 {
			a.pickCursor++
		}
	case "enter":
		target := session.AllRoles[a.pickCursor]
		a.rolePick = false
		switch a.ctrl.SwitchRole(target, false) {
		case session.Ignored:
			a.status = "Sudah masuk sebagai " + target.Label()
		case session.ConfirmationRequired:
			a.confirm = &confirmPrompt{
				title: "Ganti peran ke " + target.Label() + "?",
				body:  "Alur yang berjalan akan dibuang.",
				accept: func() tea.Cmd {
					if a.ctrl.SwitchRole(target, true) == session.Done {
						a.enterRole(target)
						a.status = "Masuk sebagai " + target.Label()
					}
					return nil
				},
			}
		}
	}
	return a, nil
}

// askBot sends the query off-loop and reports back as a message.
func (a *App) askBot(query string) tea.Cmd {
	return func() tea.Msg {
		return botReplyMsg{text: assistant.ReplyOrFallback(a.ctx, a.bot, query)}
	}
}

func (a *App) handleChatKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.chatOpen = false
		return a, nil
	case tea.KeyEnter:
		q := trimmed(a.chatInput)
		if q == "" || a.chatBusy {
			return a, nil
		}
		a.chatLog = append(a.chatLog, chatLine{text: q})
		a.chatInput = ""
		a.chatBusy = true
		return a, a.askBot(q)
	case tea.KeyBackspace, tea.KeyCtrlH:
		a.chatInput = chop(a.chatInput)
	case tea.KeySpace:
		a.chatInput += " "
	case tea.KeyRunes:
		a.chatInput += string(m.Runes)
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	if !a.ctrl.Snapshot().Authenticated {
		body = a.renderAuth()
	} else {
		body = a.renderShell()
	}
	if a.flow != nil || a.placement != nil {
		body = renderPopup(body, a.renderFlowCard(), a.width, a.height)
	}
	if a.walletWiz != nil || a.settlement != nil {
		body = renderPopup(body, a.renderWalletActionCard(), a.width, a.height)
	}
	if a.withdrawWiz != nil || a.payout != nil {
		body = renderPopup(body, a.renderWithdrawCard(), a.width, a.height)
	}
	if a.rolePick {
		body = renderPopup(body, a.renderRolePickCard(), a.width, a.height)
	}
	if a.chatOpen {
		body = renderPopup(body, a.renderChatCard(), a.width, a.height)
	}
	if a.confirm != nil {
		body = renderPopup(body, a.renderConfirmCard(), a.width, a.height)
	}
	return body
}

func (a *App) renderConfirmCard() string {
	out := dangerStyle.Render(a.confirm.title) + "\n"
	out += a.confirm.body + "\n\n"
	out += helpLine("y", "Ya", "n", "Batal")
	return out
}

func (a *App) renderRolePickCard() string {
	out := titleStyle.Render("Ganti Peran") + "\n"
	for i, r := range session.AllRoles {
		marker := "  "
		if i == a.pickCursor {
			marker = focusStyle.Render("▶ ")
		}
		line := r.Label()
		if r == a.ctrl.Snapshot().Role {
			line += mutedStyle.Render("  (aktif)")
		}
		out += marker + line + "\n"
	}
	out += "\n" + helpLine("enter", "Pilih", "esc", "Tutup")
	return out
}

func (a *App) renderChatCard() string {
	out := titleStyle.Render("NusaBot") + "\n"
	if len(a.chatLog) == 0 {
		out += mutedStyle.Render("Halo! Ada yang bisa NusaBot bantu?") + "\n"
	}
	lines := a.chatLog
	if len(lines) > 10 {
		lines = lines[len(lines)-10:]
	}
	for _, l := range lines {
		if l.fromBot {
			out += okStyle.Render("NusaBot: ") + l.text + "\n"
		} else {
			out += focusStyle.Render("Anda:    ") + l.text + "\n"
		}
	}
	if a.chatBusy {
		out += mutedStyle.Render("NusaBot sedang mengetik...") + "\n"
	}
	out += "\n> " + a.chatInput + "▌\n"
	out += helpLine("enter", "Kirim", "esc", "Tutup")
	return out
}
