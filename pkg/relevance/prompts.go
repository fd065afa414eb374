package relevance

// DefaultPrompt is used when the prompt store has no prompt_relevance_rag override.
const DefaultPrompt = `
Tugas Anda mengevaluasi apakah hasil pencarian RAG sesuai dengan maksud
pertanyaan pengguna.
Balas hanya JSON:
{"relevant": true/false, "reason": "...", "reformulated_question": "..."}

Kriteria:
✅ Relevan jika topik sama (layanan publik, fasilitas, dokumen, kebijakan).
❌ Tidak relevan jika membahas jabatan/instansi berbeda,
   kota lain, atau konteks umum vs spesifik.
Jika tidak relevan, ubah pertanyaan jadi versi singkat berbentuk tanya
maks. 12 kata.
`
