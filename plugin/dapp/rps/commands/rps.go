// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rps 命令行
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/33cn/rps/client"
	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RPSCmd rps command
func RPSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock-paper-scissors game management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.PersistentFlags().StringP("execer", "e", rty.RPSX, "game table, rps or rps.<name>")
	cmd.AddCommand(
		HashCmd(),
		CreateCmd(),
		PlayCmd(),
		RevealCmd(),
		ResolveCmd(),
		CancelCmd(),
		PenalizeCmd(),
		WithdrawCmd(),
		GameCmd(),
		ListCmd(),
		CountCmd(),
		EscrowCmd(),
	)
	return cmd
}

func getExecer(cmd *cobra.Command) string {
	execer, _ := cmd.Flags().GetString("execer")
	return execer
}

func getHash(cmd *cobra.Command, field string) (common.Hash, error) {
	s, _ := cmd.Flags().GetString(field)
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, errors.Wrapf(types.ErrInvalidParam, "%s: bad hash %q", field, s)
	}
	return common.BytesToHash(b), nil
}

func getMove(cmd *cobra.Command) (rty.Move, error) {
	s, _ := cmd.Flags().GetString("move")
	return rty.ParseMove(s)
}

func getNonce(cmd *cobra.Command) []byte {
	nonce, _ := cmd.Flags().GetString("nonce")
	return []byte(nonce)
}

func addRevealFlags(cmd *cobra.Command) {
	addCommitmentFlag(cmd)
	cmd.Flags().StringP("nonce", "n", "", "secret nonce")
	cmd.MarkFlagRequired("nonce")
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("move")
}

func addCommitmentFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("commitment", "c", "", "game commitment, 0x prefixed hex")
	cmd.MarkFlagRequired("commitment")
}

func exitErr(err error) {
	fmt.Fprintln(os.Stderr, err)
}

// HashCmd compute a commitment
func HashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute the commitment of (addr, nonce, move)",
		Run:   hash,
	}
	cmd.Flags().StringP("addr", "a", "", "address of the revealer")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("nonce", "n", "", "secret nonce")
	cmd.MarkFlagRequired("nonce")
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("move")
	return cmd
}

func hash(cmd *cobra.Command, args []string) {
	addr, err := commandtypes.GetAddr(cmd, "addr")
	if err != nil {
		exitErr(err)
		return
	}
	move, err := getMove(cmd)
	if err != nil {
		exitErr(err)
		return
	}
	h, err := rty.ComputeCommitment(addr, getNonce(cmd), move)
	if err != nil {
		exitErr(err)
		return
	}
	client.PrintJSON(map[string]string{"commitment": h.Hex()})
}

// CreateCmd create a game
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game and lock the bet",
		Run:   create,
	}
	addCommitmentFlag(cmd)
	cmd.Flags().StringP("opponent", "o", "", "opponent address")
	cmd.MarkFlagRequired("opponent")
	cmd.Flags().Uint64P("duration", "d", 600, "seconds until the deadline")
	cmd.Flags().StringP("bet", "b", "", "bet in coins")
	cmd.MarkFlagRequired("bet")
	return cmd
}

func create(cmd *cobra.Command, args []string) {
	commitment, err := getHash(cmd, "commitment")
	if err != nil {
		exitErr(err)
		return
	}
	opponent, err := commandtypes.GetAddr(cmd, "opponent")
	if err != nil {
		exitErr(err)
		return
	}
	bet, err := commandtypes.GetAmountValue(cmd, "bet")
	if err != nil {
		exitErr(err)
		return
	}
	duration, _ := cmd.Flags().GetUint64("duration")
	payload := &rty.RPSCreate{Commitment: commitment, Opponent: opponent, Duration: duration, Bet: bet}
	commandtypes.SendTx(cmd, rty.NewType(), getExecer(cmd), "Create", payload, bet)
}

// PlayCmd place the opponent move
func PlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Place a cleartext move (--move) or a committed move (--hash)",
		Run:   play,
	}
	addCommitmentFlag(cmd)
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissors")
	cmd.Flags().StringP("hash", "", "", "commitment of the own move, reveal it later")
	cmd.Flags().StringP("bet", "b", "", "bet in coins, must equal the bet of the game")
	cmd.MarkFlagRequired("bet")
	return cmd
}

func play(cmd *cobra.Command, args []string) {
	commitment, err := getHash(cmd, "commitment")
	if err != nil {
		exitErr(err)
		return
	}
	bet, err := commandtypes.GetAmountValue(cmd, "bet")
	if err != nil {
		exitErr(err)
		return
	}
	var sub rty.MoveSubmission
	if h, _ := cmd.Flags().GetString("hash"); h != "" {
		hash, err := getHash(cmd, "hash")
		if err != nil {
			exitErr(err)
			return
		}
		sub = rty.Committed(hash)
	} else {
		move, err := getMove(cmd)
		if err != nil {
			exitErr(err)
			return
		}
		sub = rty.Cleartext(move)
	}
	payload := &rty.RPSPlay{Commitment: commitment, Submission: sub}
	commandtypes.SendTx(cmd, rty.NewType(), getExecer(cmd), "Play", payload, bet)
}

// RevealCmd reveal the committed opponent move
func RevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal a committed opponent move",
		Run:   reveal,
	}
	addRevealFlags(cmd)
	return cmd
}

func reveal(cmd *cobra.Command, args []string) {
	commitment, move, err := getReveal(cmd)
	if err != nil {
		exitErr(err)
		return
	}
	payload := &rty.RPSReveal{Commitment: commitment, Nonce: getNonce(cmd), Move: move}
	commandtypes.SendTx(cmd, rty.NewType(), getExecer(cmd), "Reveal", payload, nil)
}

// ResolveCmd reveal the creator move and settle the game
func ResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Reveal the creator move and settle the game",
		Run:   resolve,
	}
	addRevealFlags(cmd)
	return cmd
}

func resolve(cmd *cobra.Command, args []string) {
	commitment, move, err := getReveal(cmd)
	if err != nil {
		exitErr(err)
		return
	}
	payload := &rty.RPSResolve{Commitment: commitment, Nonce: getNonce(cmd), Move: move}
	commandtypes.SendTx(cmd, rty.NewType(), getExecer(cmd), "Resolve", payload, nil)
}

// CancelCmd cancel a game before the opponent plays
func CancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a game the opponent has not played",
		Run:   cancel,
	}
	addRevealFlags(cmd)
	return cmd
}

func cancel(cmd *cobra.Command, args []string) {
	commitment, move, err := getReveal(cmd)
	if err != nil {
		exitErr(err)
		return
	}
	payload := &rty.RPSCancel{Commitment: commitment, Nonce: getNonce(cmd), Move: move}
	commandtypes.SendTx(cmd, rty.NewType(), getExecer(cmd), "Cancel", payload, nil)
}

func getReveal(cmd *cobra.Command) (common.Hash, rty.Move, error) {
	commitment, err := getHash(cmd, "commitment")
	if err != nil {
		return common.Hash{}, rty.MoveNone, err
	}
	move, err := getMove(cmd)
	if err != nil {
		return common.Hash{}, rty.MoveNone, err
	}
	return commitment, move, nil
}

// PenalizeCmd penalize the stalling party
func PenalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "penalize",
		Short: "Take both bets after the deadline when the other party stalls",
		Run:   penalize,
	}
	addCommitmentFlag(cmd)
	return cmd
}

func penalize(cmd *cobra.Command, args []string) {
	commitment, err := getHash(cmd, "commitment")
	if err != nil {
		exitErr(err)
		return
	}
	commandtypes.SendTx(cmd, rty.NewType(), getExecer(cmd), "Penalize", &rty.RPSPenalize{Commitment: commitment}, nil)
}

// WithdrawCmd withdraw the whole escrow balance
func WithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw the whole escrow balance of --from",
		Run: func(cmd *cobra.Command, args []string) {
			commandtypes.SendTx(cmd, rty.NewType(), getExecer(cmd), "Withdraw", &rty.RPSWithdraw{}, nil)
		},
	}
}

// GameCmd query a game
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Query a game by session id or commitment",
		Run:   game,
	}
	cmd.Flags().Uint64P("id", "i", 0, "session id")
	cmd.Flags().StringP("commitment", "c", "", "game commitment")
	return cmd
}

func game(cmd *cobra.Command, args []string) {
	var ctx *client.ExecCtx
	if c, _ := cmd.Flags().GetString("commitment"); c != "" {
		commitment, err := getHash(cmd, "commitment")
		if err != nil {
			exitErr(err)
			return
		}
		ctx = client.NewQueryCtx(commandtypes.GetConf(cmd), getExecer(cmd), rty.FuncNameGetGameByCommitment, &rty.ReqGameByCommitment{Commitment: commitment})
	} else {
		id, _ := cmd.Flags().GetUint64("id")
		ctx = client.NewQueryCtx(commandtypes.GetConf(cmd), getExecer(cmd), rty.FuncNameGetGame, &rty.ReqGame{SessionID: id})
	}
	ctx.SetResultCb(parseGame)
	ctx.Run()
}

// ListCmd list games
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status (and address)",
		Run:   list,
	}
	addStatusFlags(cmd)
	cmd.Flags().Uint64P("index", "i", 0, "index of the last game of the previous page")
	cmd.Flags().Uint32P("count", "n", uint32(rty.DefaultCount), "page size")
	cmd.Flags().Uint32P("direction", "d", 0, "0: desc, 1: asc")
	return cmd
}

func addStatusFlags(cmd *cobra.Command) {
	cmd.Flags().Uint32P("status", "s", rty.GameStatusCreated, "1: created, 2: played, 3: resolved, 4: cancelled, 5: penalized")
	cmd.Flags().StringP("addr", "a", "", "creator or opponent address")
}

func getStatusAddr(cmd *cobra.Command) (uint32, common.Address, error) {
	status, _ := cmd.Flags().GetUint32("status")
	if s, _ := cmd.Flags().GetString("addr"); s != "" {
		addr, err := commandtypes.GetAddr(cmd, "addr")
		return status, addr, err
	}
	return status, common.Address{}, nil
}

func list(cmd *cobra.Command, args []string) {
	status, addr, err := getStatusAddr(cmd)
	if err != nil {
		exitErr(err)
		return
	}
	index, _ := cmd.Flags().GetUint64("index")
	count, _ := cmd.Flags().GetUint32("count")
	direction, _ := cmd.Flags().GetUint32("direction")
	req := &rty.ReqListGames{Status: status, Addr: addr, Index: index, Count: count, Direction: direction}
	ctx := client.NewQueryCtx(commandtypes.GetConf(cmd), getExecer(cmd), rty.FuncNameListGames, req)
	ctx.SetResultCb(parseGameList)
	ctx.Run()
}

// CountCmd count games
func CountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count games by status (and address)",
		Run:   count,
	}
	addStatusFlags(cmd)
	return cmd
}

func count(cmd *cobra.Command, args []string) {
	status, addr, err := getStatusAddr(cmd)
	if err != nil {
		exitErr(err)
		return
	}
	ctx := client.NewQueryCtx(commandtypes.GetConf(cmd), getExecer(cmd), rty.FuncNameCountGames, &rty.ReqCountGames{Status: status, Addr: addr})
	ctx.Run()
}

// EscrowCmd query the escrow account
func EscrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow",
		Short: "Query withdrawable and frozen escrow of an address",
		Run:   escrow,
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func escrow(cmd *cobra.Command, args []string) {
	addr, err := commandtypes.GetAddr(cmd, "addr")
	if err != nil {
		exitErr(err)
		return
	}
	ctx := client.NewQueryCtx(commandtypes.GetConf(cmd), getExecer(cmd), rty.FuncNameGetEscrow, &rty.ReqEscrow{Addr: addr})
	ctx.SetResultCb(func(res interface{}) (interface{}, error) {
		return client.DecodeAccount(res.(*types.Account)), nil
	})
	ctx.Run()
}

// GameResult 游戏的命令行输出
type GameResult struct {
	SessionID    uint64 `json:"sessionID"`
	Commitment   string `json:"commitment"`
	Creator      string `json:"creator"`
	Opponent     string `json:"opponent"`
	Bet          string `json:"bet"`
	Deadline     string `json:"deadline"`
	Status       string `json:"status"`
	Submission   string `json:"submission"`
	Hash         string `json:"hash,omitempty"`
	OpponentMove string `json:"opponentMove"`
	CreatorMove  string `json:"creatorMove"`
	Result       string `json:"result"`
	Winner       string `json:"winner,omitempty"`
	CloseTime    string `json:"closeTime,omitempty"`
}

var statusNames = map[uint32]string{
	rty.GameStatusCreated:   "created",
	rty.GameStatusPlayed:    "played",
	rty.GameStatusResolved:  "resolved",
	rty.GameStatusCancelled: "cancelled",
	rty.GameStatusPenalized: "penalized",
}

var resultNames = map[uint32]string{
	rty.ResultNone:        "none",
	rty.ResultCreatorWin:  "creator win",
	rty.ResultOpponentWin: "opponent win",
	rty.ResultTie:         "tie",
}

var submissionNames = map[uint8]string{
	rty.SubmissionNone:      "none",
	rty.SubmissionCleartext: "cleartext",
	rty.SubmissionCommitted: "committed",
}

func formatTime(t uint64) string {
	return time.Unix(int64(t), 0).Format(time.RFC3339)
}

func newGameResult(g *rty.GameRecord) *GameResult {
	res := &GameResult{
		SessionID:    g.SessionID,
		Commitment:   g.Commitment.Hex(),
		Creator:      g.Creator.Hex(),
		Opponent:     g.Opponent.Hex(),
		Bet:          types.FormatCoins(g.GetBet()),
		Deadline:     formatTime(g.Deadline),
		Status:       statusNames[g.Status],
		Submission:   submissionNames[g.Submission.Kind],
		OpponentMove: g.OpponentMove.String(),
		CreatorMove:  g.CreatorMove.String(),
		Result:       resultNames[g.Result],
	}
	if g.Submission.Kind == rty.SubmissionCommitted {
		res.Hash = g.Submission.Hash.Hex()
	}
	if g.Winner != (common.Address{}) {
		res.Winner = g.Winner.Hex()
	}
	if g.Resolved {
		res.CloseTime = formatTime(g.CloseTime)
	}
	return res
}

func parseGame(res interface{}) (interface{}, error) {
	return newGameResult(res.(*rty.GameRecord)), nil
}

func parseGameList(res interface{}) (interface{}, error) {
	list := res.(*rty.ReplyGameList)
	games := make([]*GameResult, 0, len(list.Games))
	for _, g := range list.Games {
		games = append(games, newGameResult(g))
	}
	return games, nil
}
