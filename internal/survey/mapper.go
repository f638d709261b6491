package survey

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/dtalero78/siigo-retiros/internal/model"
)

// Mapper turns raw submissions into canonical response records. Known
// catalogs carry an explicit role map; for catalogs without one the
// mapper falls back to keyword inference over the question prompts.
type Mapper struct {
	resolver *Resolver
	log      *zap.Logger
}

func NewMapper(resolver *Resolver, log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{resolver: resolver, log: log}
}

// MapToCanonical extracts the canonical fields from a raw submission.
// It never fails: unmapped roles are left at their zero values and the
// original payload is kept verbatim in AllResponses.
func (m *Mapper) MapToCanonical(raw json.RawMessage, area string) *model.Response {
	sub := ParseSubmission(raw)

	rec := &model.Response{
		AllResponses: append(json.RawMessage(nil), raw...),
	}

	if a := sub.String("area"); a != "" {
		area = a
	}
	rec.Area = area

	cat := m.resolver.Resolve(area)
	roles := cat.Roles
	if len(roles) == 0 {
		roles = inferRoles(cat)
		m.log.Debug("no role map for catalog, inferred from prompts",
			zap.String("catalog", cat.Name),
			zap.Int("roles", len(roles)))
	}

	for role, number := range roles {
		q, ok := cat.Question(number)
		if !ok {
			continue
		}
		m.assign(rec, role, q, sub)
	}

	m.fillAuxiliary(rec, sub)
	return rec
}

// assign copies one answer into its canonical field, coercing by role.
func (m *Mapper) assign(rec *model.Response, role Role, q Question, sub Submission) {
	if role == RoleSatisfaction {
		rec.SatisfactionRatings = matrixAnswers(q, sub)
		return
	}

	v, ok := sub.Answer(q.Key())
	if !ok {
		return
	}

	switch role {
	case RoleFullName:
		rec.FullName = answerString(v)
	case RoleIdentification:
		rec.Identification = answerString(v)
	case RoleExitDate:
		rec.ExitDate = parseDate(answerString(v))
	case RoleTenure:
		rec.Tenure = answerString(v)
	case RoleArea:
		rec.Area = answerString(v)
	case RoleCountry:
		rec.Country = answerString(v)
	case RoleLastLeader:
		rec.LastLeader = answerString(v)
	case RoleExitReasonCategory:
		rec.ExitReasonCategory = answerString(v)
	case RoleExitReasonDetail:
		rec.ExitReasonDetail = answerString(v)
	case RoleExperienceRating:
		rec.ExperienceRating = parseRating(v)
	case RoleWouldRecommend:
		rec.WouldRecommend = answerString(v)
	case RoleWouldReturn:
		rec.WouldReturn = answerString(v)
	case RoleWhatEnjoyed:
		rec.WhatEnjoyed = answerString(v)
	case RoleWhatToImprove:
		rec.WhatToImprove = answerString(v)
	case RoleNewCompanyInfo:
		rec.NewCompanyInfo = answerString(v)
	}
}

// matrixAnswers collects a matrix question's answers as a JSON object
// keyed by item text. It accepts both wire shapes: a nested object
// under the question key, or flat "q<n>_<i>" keys.
func matrixAnswers(q Question, sub Submission) json.RawMessage {
	out := map[string]string{}

	if v, ok := sub.Answer(q.Key()); ok {
		if nested, isMap := v.(map[string]interface{}); isMap {
			for item, ans := range nested {
				out[item] = answerString(ans)
			}
		}
	}
	for i, item := range q.Items {
		if v, ok := sub.Answer(q.ItemKey(i)); ok {
			out[item] = answerString(v)
		}
	}

	if len(out) == 0 {
		return nil
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil
	}
	return b
}

// fillAuxiliary covers the identity and roster fields the form sends
// as top-level keys next to the question answers. Question-mapped
// values win; auxiliary keys only fill gaps.
func (m *Mapper) fillAuxiliary(rec *model.Response, sub Submission) {
	if rec.FullName == "" {
		rec.FullName = sub.String("full_name")
	}
	if rec.Identification == "" {
		rec.Identification = sub.String("identification")
	}
	if rec.Identification == "" {
		rec.Identification = sub.String("userId")
	}
	if rec.ExitDate == nil {
		rec.ExitDate = parseDate(sub.String("exit_date"))
	}
	if rec.Country == "" {
		rec.Country = sub.String("country")
	}

	rec.StartDate = parseDate(sub.String("fechaInicio"))
	rec.Position = sub.String("cargo")
	rec.SubArea = sub.String("subArea")
	rec.Leader = sub.String("lider")
	rec.TrainingLeader = sub.String("liderEntrenamiento")
	rec.HiringCountry = sub.String("paisContratacion")
}

// heuristicRule binds a canonical role to the prompt keywords that
// identify it and the question types it can live on. Rules are ordered:
// the more specific prompts come first so "categoría del motivo" does
// not land on the free-text detail role.
type heuristicRule struct {
	role     Role
	keywords []string
	types    []Type
}

var heuristicRules = []heuristicRule{
	{RoleSatisfaction, []string{"satisfacción", "satisfaccion"}, []Type{TypeMatrix}},
	{RoleExperienceRating, []string{"experiencia general", "experiencia laboral"}, []Type{TypeScale, TypeRadio}},
	{RoleWouldRecommend, []string{"recomendarías", "recomendarias"}, nil},
	{RoleWouldReturn, []string{"regresar", "volverías", "volverias"}, nil},
	{RoleWhatEnjoyed, []string{"disfrutaste", "más te gustó"}, nil},
	{RoleWhatToImprove, []string{"mejorar"}, nil},
	{RoleExitReasonCategory, []string{"categoría", "categoria"}, []Type{TypeRadio, TypeDropdown}},
	{RoleExitReasonDetail, []string{"motivo", "razón de tu salida", "razon de tu salida"}, []Type{TypeTextarea, TypeText}},
	{RoleNewCompanyInfo, []string{"empresa te cambiaste", "nueva empresa"}, nil},
	{RoleFullName, []string{"nombre completo"}, nil},
	{RoleIdentification, []string{"identificación", "identificacion", "cédula", "cedula"}, nil},
	{RoleExitDate, []string{"fecha de retiro", "fecha de salida"}, []Type{TypeDate, TypeText}},
	{RoleTenure, []string{"tiempo total", "cuánto tiempo", "cuanto tiempo"}, nil},
	{RoleArea, []string{"área trabajaste", "area trabajaste", "cuál área", "cual area"}, nil},
	{RoleCountry, []string{"país", "pais"}, nil},
	{RoleLastLeader, []string{"líder", "lider", "jefe"}, []Type{TypeText, TypeDropdown, TypeRadio}},
}

// inferRoles builds a role map for a catalog that does not ship one,
// scanning prompts in question order and assigning each role at most
// once, first match wins.
func inferRoles(cat *Catalog) map[Role]int {
	roles := make(map[Role]int)
	for _, q := range cat.Questions {
		prompt := strings.ToLower(q.Prompt)
		for _, rule := range heuristicRules {
			if _, taken := roles[rule.role]; taken {
				continue
			}
			if !rule.allowsType(q.Type) {
				continue
			}
			if !containsAny(prompt, rule.keywords) {
				continue
			}
			roles[rule.role] = q.Number
			break
		}
	}
	return roles
}

func (r heuristicRule) allowsType(t Type) bool {
	if len(r.types) == 0 {
		return t != TypeMatrix
	}
	for _, allowed := range r.types {
		if t == allowed {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
