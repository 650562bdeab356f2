package http

// Informational landing page for humans poking at the service.
const homeHTML = `<!doctype html>
<html lang="fr">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>Jardin Proxy</title>
  <style>
    body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Arial;background:#0b0f14;color:#e8eef7;margin:0}
    .wrap{max-width:820px;margin:0 auto;padding:28px}
    .card{background:#111826;border:1px solid #1f2a3a;border-radius:16px;padding:18px;margin-top:14px}
    h1{margin:0 0 6px 0;font-size:26px}
    .muted{opacity:.8}
    code,pre{background:#0b1220;border:1px solid #1f2a3a;border-radius:12px;padding:10px;display:block;overflow:auto}
    a{color:#86b7ff}
  </style>
</head>
<body>
  <div class="wrap">
    <h1>🌿 Jardin Proxy</h1>
    <div class="muted">Service OK. Endpoints disponibles :</div>

    <div class="card">
      <b>GET /health</b>
      <pre>{"ok": true}</pre>
    </div>

    <div class="card">
      <b>POST /analyze</b> (texte)
      <pre>{
  "prompt": "Ma plante a des feuilles jaunes, que faire ?"
}</pre>
    </div>

    <div class="card">
      <b>POST /analyze-image</b> (image base64 + prompt)
      <pre>{
  "image_base64": "(base64 jpeg sans prefix)",
  "prompt": "Analyse cette plante…"
}</pre>
    </div>

    <div class="card">
      <b>POST /potager</b> (calendrier du mois)
      <pre>{
  "region": "Sud-Ouest",
  "mois": "Mars",
  "phase_lune": "croissante"
}</pre>
    </div>

    <div class="card">
      <b>POST /meteo</b> (résumé 7 jours)
      <pre>{
  "region": "Nord"
}</pre>
    </div>

    <div class="card">
      <div class="muted">Astuce : ouvre <a href="/health">/health</a> pour vérifier rapidement.</div>
    </div>
  </div>
</body>
</html>
`
