package conversation

import (
    "context"
    "log"
    "time"

    "github.com/google/uuid"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/calculation"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/extraction"
    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

// SystemPrompt steers the reply generator through the intake flow. The
// generator produces conversation only; all data capture and phase decisions
// happen in code.
const SystemPrompt = `You are a professional mortgage pre-qualification assistant. Your job is to collect financial information through natural conversation.

CONVERSATION FLOW:
1. Intent Classification: Ask if they want to purchase or refinance
2. Information Collection: Gather ALL required data:
   - For PURCHASE: annual income, monthly debts, purchase price, down payment amount
   - For REFINANCE: annual income, monthly debts, property value, desired loan amount
3. Contact Information: Collect full name, email, and phone number
4. Verification: Inform them about SMS verification (email is collected but not verified)
5. Results: Calculate and present borrowing capacity

IMPORTANT RULES:
- Be conversational and professional
- Extract multiple data points from natural responses
- You MUST collect ALL required financial data before moving to contact info
- When summarizing collected data, use the EXACT amounts mentioned to ensure accuracy
- Never skip verification before showing results
- Format currency amounts properly (e.g., $80,000)
- Acknowledge each piece of information collected
- If data is missing, specifically ask for it
- After showing results, if the user mentions "purchase" or "refinance" again, they want to start a new application
- In the results phase, offer to help with a new application if they ask`

// ReplyGenerator is the opaque text-generation collaborator.
type ReplyGenerator interface {
    Reply(ctx context.Context, systemPrompt string, history []models.Message) (string, error)
}

// CodeSender delivers verification codes once the verification phase starts.
type CodeSender interface {
    SendCodes(ctx context.Context, sess *models.SessionData, email, phone string) error
}

// ResultsNotifier hands a computed result off for delivery. Fire-and-forget;
// no return value is consumed.
type ResultsNotifier interface {
    SendResults(email string, result calculation.Result, data models.UserData)
}

type Service struct {
    machine  *Machine
    gen      ReplyGenerator
    sender   CodeSender
    notifier ResultsNotifier

    // aiCorrectionsWin controls the merge priority of the secondary
    // extraction pass over the generated reply: false fills gaps only, true
    // lets reply-extracted values overwrite user-extracted ones.
    aiCorrectionsWin bool
}

func NewService(machine *Machine, gen ReplyGenerator, sender CodeSender, notifier ResultsNotifier, aiCorrectionsWin bool) *Service {
    return &Service{machine: machine, gen: gen, sender: sender, notifier: notifier, aiCorrectionsWin: aiCorrectionsWin}
}

// TurnResult is what one processed user message produces.
type TurnResult struct {
    State   models.ConversationState  `json:"state"`
    Reply   string                    `json:"reply"`
    Results *calculation.Result       `json:"results,omitempty"`
}

// ProcessTurn is the orchestration entry point the transport layer calls per
// user message. Collaborator failures propagate to the caller unretried.
func (s *Service) ProcessTurn(ctx context.Context, sess *models.SessionData, content string) (TurnResult, error) {
    state := sess.Conversation

    state.Messages = append(state.Messages, models.Message{
        ID:        uuid.NewString(),
        Content:   content,
        Sender:    models.SenderUser,
        Timestamp: time.Now(),
    })

    reply, err := s.gen.Reply(ctx, SystemPrompt, state.Messages)
    if err != nil {
        return TurnResult{}, err
    }

    phaseBefore := state.Phase
    extracted := extraction.Extract(content, phaseBefore, state.CollectedData)
    state = s.machine.Advance(ctx, state, content, extracted)
    restarted := phaseBefore == models.PhaseResults && state.Phase == models.PhaseIntent

    // Secondary pass over the generated reply: the assistant sometimes
    // restates corrected figures. Priority is configurable (open product
    // question); default is that explicit user input wins. Skipped on a
    // restart turn: the reply was generated from the old application's
    // history and would repopulate the just-cleared data.
    if !restarted {
        if aiFields := extraction.Extract(reply, phaseBefore, state.CollectedData); !aiFields.Empty() {
            if s.aiCorrectionsWin {
                state.CollectedData = state.CollectedData.Merge(aiFields.Data)
            } else {
                state.CollectedData = aiFields.Data.Merge(state.CollectedData)
            }
            if state.Phase == models.PhaseCollection && requiredDataPresent(state.CollectedData, state.Intent) {
                state.Phase = models.PhaseVerification
            }
        }
    }

    state.Messages = append(state.Messages, models.Message{
        ID:        uuid.NewString(),
        Content:   reply,
        Sender:    models.SenderAgent,
        Timestamp: time.Now(),
    })

    sess.Conversation = state

    // Entering verification with contact details on file triggers code
    // delivery. The sender owns dedupe/expiry of pending codes.
    if state.Phase == models.PhaseVerification &&
        state.CollectedData.Email != nil && state.CollectedData.Phone != nil &&
        !state.VerificationStatus.SMS && s.sender != nil {
        if err := s.sender.SendCodes(ctx, sess, *state.CollectedData.Email, *state.CollectedData.Phone); err != nil {
            log.Printf("send verification codes: %v", err)
        }
    }

    result := TurnResult{State: sess.Conversation, Reply: reply}

    if state.Phase == models.PhaseResults && state.VerificationStatus.SMS {
        res, err := calculation.Calculate(calculation.FromUserData(state.CollectedData, state.Intent))
        if err != nil {
            return TurnResult{}, err
        }
        result.Results = &res
        if state.CollectedData.Email != nil && s.notifier != nil {
            s.notifier.SendResults(*state.CollectedData.Email, res, state.CollectedData)
        }
    }
    return result, nil
}
