package garden

import (
	"fmt"
	"strings"

	"github.com/jardinvision/jardin-proxy/internal/domain/forecast"
)

// ComposePrompt builds the user instruction sent to the completion service.
// The month is embedded verbatim, the phase is the canonical value or blank,
// and the forecast block is included only when a usable summary exists.
func ComposePrompt(req Request, phase Phase, meteo forecast.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Région: %s\n", req.Region)
	fmt.Fprintf(&b, "Mois (à respecter à l'identique): %s\n", req.Month)
	fmt.Fprintf(&b, "Phase de lune (si fournie): %s\n", phase)

	if meteo.OK {
		fmt.Fprintf(&b, "\nMétéo des 7 prochains jours (%s):\n", meteo.Region)
		if meteo.MinTemp7d != nil {
			fmt.Fprintf(&b, "- Température minimale: %.1f°C\n", *meteo.MinTemp7d)
		}
		if meteo.MaxTemp7d != nil {
			fmt.Fprintf(&b, "- Température maximale: %.1f°C\n", *meteo.MaxTemp7d)
		}
		fmt.Fprintf(&b, "- Précipitations totales: %.1f mm\n", meteo.TotalPrecip7d)
		if meteo.MaxWind7d != nil {
			fmt.Fprintf(&b, "- Vent maximal: %.1f km/h\n", *meteo.MaxWind7d)
		}
		fmt.Fprintf(&b, "- Conseil météo: %s\n", meteo.Advisory)
	}

	b.WriteString(`
Génère un calendrier potager réaliste incluant :
- légumes
- fruits (ex: fraisiers, petits fruits, arbres fruitiers si pertinent)
- aromatiques

Contraintes :
- JSON strict uniquement
- 10 à 20 éléments par liste
- pas de doublons
- si un élément est sous abri / serre, précise-le entre parenthèses

RÈGLE LUNE (STRICTE) :
- Si phase_lune est vide : mets "phase_non_fournie" et NE DONNE PAS de conseils lunaires.
- Si phase_lune est fournie (croissante/décroissante) : donne un court conseil lunaire OPTIONNEL.
- Ne jamais inventer une phase.

Format EXACT:
{
  "semer": [...],
  "planter": [...],
  "a_eviter": [...],
  "lune": {
    "phase": "croissante" | "décroissante" | "phase_non_fournie",
    "conseil": "string (court)" | ""
  }
}`)

	return strings.TrimSpace(b.String())
}
