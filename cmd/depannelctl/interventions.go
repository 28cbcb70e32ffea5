package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	listGroup string
	agentsAll bool

	actAgent      string
	actReason     string
	actPriority   string
	actWork       string
	actResolution string
	actParts      string
	actClosure    string
	actNotes      string
)

var (
	styleLabel  = lipgloss.NewStyle().Bold(true)
	styleStatus = map[lifecycle.Group]lipgloss.Style{
		lifecycle.GroupPool:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		lifecycle.GroupAssigned:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lifecycle.GroupActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lifecycle.GroupCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lifecycle.GroupClosed:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List interventions visible to the signed-in user",
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [intervention-id]",
	Short: "Show intervention details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var actionsCmd = &cobra.Command{
	Use:   "actions [intervention-id]",
	Short: "List the actions available on an intervention",
	Args:  cobra.ExactArgs(1),
	RunE:  runActions,
}

var actCmd = &cobra.Command{
	Use:   "act [action] [intervention-id]",
	Short: "Request a lifecycle transition",
	Long: `Request a lifecycle transition. Actions: assign, accept, reassign, start,
arrive, complete, refuse, priority, close.`,
	Args: cobra.ExactArgs(2),
	RunE: runAct,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show dashboard counts",
	RunE:  runSummary,
}

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List agents available for assignment, or the whole directory with --all",
	RunE:  runAgents,
}

func init() {
	agentsCmd.Flags().BoolVar(&agentsAll, "all", false, "List every agent with account status")

	listCmd.Flags().StringVar(&listGroup, "group", "", "Filter by group (pool, assigned, active, completed, closed)")

	actCmd.Flags().StringVar(&actAgent, "agent", "", "Agent id (assign, reassign)")
	actCmd.Flags().StringVar(&actReason, "reason", "", "Refusal reason (refuse)")
	actCmd.Flags().StringVar(&actPriority, "priority", "", "Priority level: low, medium, high (priority)")
	actCmd.Flags().StringVar(&actWork, "work", "", "Work description (complete)")
	actCmd.Flags().StringVar(&actResolution, "resolution", "", "Resolution notes (complete)")
	actCmd.Flags().StringVar(&actParts, "parts", "", "Parts used (complete)")
	actCmd.Flags().StringVar(&actClosure, "closure-reason", "", "Closure reason (close)")
	actCmd.Flags().StringVar(&actNotes, "notes", "", "Manager notes (close)")
}

func session() (*cliApp, entities.Principal, error) {
	p, err := loadSession()
	if err != nil {
		return nil, entities.Principal{}, err
	}
	a, err := newCLIApp()
	if err != nil {
		return nil, entities.Principal{}, err
	}
	return a, p, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	a, p, err := session()
	if err != nil {
		return err
	}
	f := usecase.ListFilter{Refresh: true}
	if listGroup != "" {
		g, ok := lifecycle.ParseGroup(listGroup)
		if !ok {
			return fmt.Errorf("unknown group %q", listGroup)
		}
		f.Group = g
	}

	list, err := a.interventions.List(cmd.Context(), p, f)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No interventions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREFERENCE\tTITLE\tSTATUS\tPRIORITY\tAGENT")
	for _, iv := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			iv.ID, iv.Reference, truncate(iv.Title, 40), statusText(iv), iv.Priority, iv.AssignedAgentID)
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	a, p, err := session()
	if err != nil {
		return err
	}
	iv, err := a.interventions.Get(cmd.Context(), p, args[0])
	if err != nil {
		return err
	}
	printIntervention(iv)
	return nil
}

func runActions(cmd *cobra.Command, args []string) error {
	a, p, err := session()
	if err != nil {
		return err
	}
	actions, err := a.interventions.AvailableActions(cmd.Context(), p, args[0])
	if err != nil {
		return err
	}
	if len(actions) == 0 {
		fmt.Println("No actions available")
		return nil
	}
	names := make([]string, 0, len(actions))
	for _, act := range actions {
		names = append(names, string(act))
	}
	fmt.Println(strings.Join(names, "\n"))
	return nil
}

func runAct(cmd *cobra.Command, args []string) error {
	action, ok := lifecycle.ParseAction(args[0])
	if !ok {
		return fmt.Errorf("unknown action %q", args[0])
	}
	a, p, err := session()
	if err != nil {
		return err
	}

	iv, err := a.interventions.Apply(cmd.Context(), p, args[1], usecase.TransitionCommand{
		Action:  action,
		AgentID: strings.TrimSpace(actAgent),
		Reason:  actReason,
		Report: lifecycle.CompletionReport{
			WorkDescription: actWork,
			ResolutionNotes: actResolution,
			PartsUsed:       actParts,
		},
		Closure:  lifecycle.ClosureNotes{Reason: actClosure, ManagerNotes: actNotes},
		Priority: entities.Priority(strings.ToLower(strings.TrimSpace(actPriority))),
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s confirmed\n", action)
	printIntervention(iv)
	return nil
}

func runSummary(cmd *cobra.Command, _ []string) error {
	a, p, err := session()
	if err != nil {
		return err
	}
	// the summary reads the view, which starts empty in a fresh process
	if _, err := a.interventions.List(cmd.Context(), p, usecase.ListFilter{Refresh: true}); err != nil {
		return err
	}
	view, err := a.interventions.Summary(cmd.Context(), p)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if view.Tabs != nil {
		fmt.Fprintf(w, "To accept\t%d\n", view.Tabs.ToAccept)
		fmt.Fprintf(w, "In progress\t%d\n", view.Tabs.InProgress)
		fmt.Fprintf(w, "Done\t%d\n", view.Tabs.Done)
		return w.Flush()
	}
	s := view.Summary
	fmt.Fprintf(w, "Pool\t%d\n", s.Pool)
	fmt.Fprintf(w, "Assigned\t%d\n", s.Assigned)
	fmt.Fprintf(w, "Active\t%d\n", s.Active)
	fmt.Fprintf(w, "Completed\t%d\n", s.Completed)
	fmt.Fprintf(w, "Closed\t%d\n", s.Closed)
	fmt.Fprintf(w, "Total\t%d\n", s.Total)
	return w.Flush()
}

func runAgents(cmd *cobra.Command, _ []string) error {
	a, p, err := session()
	if err != nil {
		return err
	}
	var agents []entities.Agent
	if agentsAll {
		agents, err = a.catalog.ListAgents(cmd.Context(), p)
	} else {
		agents, err = a.interventions.AvailableAgents(cmd.Context(), p)
	}
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tAVAILABILITY\tSTATUS")
	for _, ag := range agents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ag.ID, ag.Name, ag.Phone, ag.Availability, ag.Status)
	}
	return w.Flush()
}

func statusText(iv entities.Intervention) string {
	s := string(iv.Status)
	if iv.SubStatus != entities.SubStatusNone {
		s += "/" + string(iv.SubStatus)
	}
	return s
}

func printIntervention(iv entities.Intervention) {
	status := statusText(iv)
	if st, ok := styleStatus[lifecycle.GroupOf(iv.Status)]; ok {
		status = st.Render(status)
	}
	field := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Printf("%s %s\n", styleLabel.Render(fmt.Sprintf("%-12s", label+":")), value)
	}
	field("ID", iv.ID)
	field("Reference", iv.Reference)
	field("Title", iv.Title)
	field("Status", status)
	field("Priority", string(iv.Priority))
	field("Agent", iv.AssignedAgentID)
	field("Client", strings.TrimSpace(iv.ClientName+" "+iv.ClientPhone))
	field("Address", iv.Address)
	field("Refusal", iv.RefusalReason)
	if !iv.UpdatedAt.IsZero() {
		field("Updated", iv.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
